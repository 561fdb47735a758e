package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fitdash/internal/metrics"
	"fitdash/internal/service"
)

const progressBarWidth = 20

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	query   *service.QueryService
	data    *service.DashboardData
	loading bool
	err     error

	cursor  int
	detail  *service.MetricHistory
	showing bool
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(q *service.QueryService) DashboardModel {
	return DashboardModel{
		query:   q,
		loading: true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.query.Dashboard()
	return dashboardDataMsg{data: data, err: err}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

type historyMsg struct {
	hist *service.MetricHistory
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.data != nil && m.cursor >= len(m.data.Tracking) {
			m.cursor = 0
		}
		if m.showing {
			return m, m.loadHistory
		}

	case historyMsg:
		if msg.err != nil {
			// Don't leave a stale card up for a different metric.
			m.detail = nil
			return m, nil
		}
		m.detail = msg.hist

	case tea.KeyMsg:
		if m.data == nil {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			if m.showing {
				return m, m.loadHistory
			}
		case "down", "j":
			if m.cursor < len(m.data.Tracking)-1 {
				m.cursor++
			}
			if m.showing {
				return m, m.loadHistory
			}
		case "enter":
			m.showing = true
			return m, m.loadHistory
		case "esc":
			m.showing = false
			m.detail = nil
		}
	}
	return m, nil
}

func (m DashboardModel) loadHistory() tea.Msg {
	key := m.data.Tracking[m.cursor].Key
	hist, err := m.query.History(key)
	return historyMsg{hist: hist, err: err}
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return renderDataError(m.err)
	}

	if m.data == nil {
		return "\n  No data yet. Press 'r' to reload."
	}

	tracking := m.renderTrackingCard()

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSummaryCard(),
		m.renderTargetsCard(),
	)
	if m.showing && m.detail != nil {
		right = lipgloss.JoinVertical(lipgloss.Left, right, m.renderDetailCard())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, tracking, "  ", right)

	help := statusStyle.Render("up/down select, enter history, [ ] range, r reload, e export")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// renderDataError distinguishes an empty feed from an empty window.
func renderDataError(err error) string {
	switch {
	case errors.Is(err, service.ErrNoData):
		return "\n  No valid data in the feed. Check the data sheet URL, or press 'r' to retry."
	case errors.Is(err, service.ErrEmptyWindow):
		return "\n  No data for this range. Press ']' to widen the range."
	default:
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", err))
	}
}

func (m DashboardModel) renderTrackingCard() string {
	title := cardTitleStyle.Render("Today's Tracking - " + m.data.Date.Format("Mon, Jan 2 2006"))

	rows := make([]string, 0, len(m.data.Tracking))
	for i, item := range m.data.Tracking {
		rows = append(rows, m.renderTrackingRow(i, item))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, list))
}

func (m DashboardModel) renderTrackingRow(i int, item service.TrackingItem) string {
	dot := statusStyleFor(item.Status).Render("●")

	label := fmt.Sprintf("%-18s", item.Title)
	value := fmt.Sprintf("%12s", item.Display)
	if i == m.cursor {
		label = selectedRowStyle.Render(label)
	} else {
		label = metricLabelStyle.Render(label)
	}

	row := dot + " " + label + " " + metricValueStyle.Render(value)
	if item.HasValue && item.ShowBar {
		row += "  " + RenderProgressBar(item.Percent, progressBarWidth, item.Status)
	}
	return row
}

func (m DashboardModel) renderSummaryCard() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Summary (%s)", rangeLabel(m.data.Range)))
	s := m.data.Summary

	change := fmt.Sprintf("%+.1f kg", s.WeightChange)
	rate := fmt.Sprintf("%+.2f kg/wk", s.WeeklyRate)

	lines := []string{
		RenderMetric("Current Weight", fmt.Sprintf("%.1f kg", s.CurrentWeight), ""),
		RenderMetric("Change", change, trendArrow(s.WeightChange)),
		RenderMetric("Weekly Rate", rate, ""),
		RenderMetric("Avg Calories", fmt.Sprintf("%d cal", s.AvgCalories), ""),
		RenderMetric("Avg Protein", fmt.Sprintf("%d g", s.AvgProtein), ""),
		RenderMetric("Avg Steps", fmt.Sprintf("%d", s.AvgSteps), ""),
		RenderMetric("Avg Deficit", fmt.Sprintf("%d cal", s.AvgDeficit), ""),
		"",
		statusStyle.Render(fmt.Sprintf("%d of %d logged days in range", m.data.WindowDays, m.data.TotalDays)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTargetsCard() string {
	title := cardTitleStyle.Render("Daily Targets (range average)")

	lines := []string{
		targetLine("Protein", float64(m.data.Summary.AvgProtein), m.data.ProteinTarget, "g", m.data.ProteinProgress),
		targetLine("Steps", float64(m.data.Summary.AvgSteps), m.data.StepsTarget, "", m.data.StepsProgress),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func targetLine(label string, achieved, target float64, unit string, pct float64) string {
	status := metrics.StatusNeutral
	if pct >= 100 {
		status = metrics.StatusGood
	}
	detail := fmt.Sprintf("%.0f / %.0f %s (%.0f%%)", achieved, target, unit, pct)
	return lipgloss.JoinVertical(lipgloss.Left,
		metricLabelStyle.Render(label)+metricValueStyle.Render(detail),
		RenderProgressBar(pct, 30, status),
	)
}

func (m DashboardModel) renderDetailCard() string {
	d := m.detail
	title := cardTitleStyle.Render(d.Title + " - History")

	if len(d.Points) < 2 {
		return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title,
			statusStyle.Render("Not enough readings in range")))
	}

	values := make([]float64, len(d.Points))
	for i, p := range d.Points {
		values[i] = p.Value
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(6),
		asciigraph.Width(34),
		asciigraph.Precision(1),
	)

	unit := d.Unit
	if unit != "" {
		unit = " " + unit
	}
	stats := statusStyle.Render(fmt.Sprintf("avg %.1f%s  min %.1f  max %.1f  (%d readings)",
		d.Avg, unit, d.Min, d.Max, len(d.Points)))

	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, stats))
}

func trendArrow(change float64) string {
	switch {
	case change < 0:
		return "↓"
	case change > 0:
		return "↑"
	default:
		return ""
	}
}
