package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fitdash/internal/service"
)

const (
	chartHeight = 8
	chartWidth  = 64
)

// ChartsModel is the charts screen model
type ChartsModel struct {
	query   *service.QueryService
	data    *service.ChartsData
	loading bool
	err     error

	showMA bool
}

// NewChartsModel creates a new charts model
func NewChartsModel(q *service.QueryService) ChartsModel {
	return ChartsModel{
		query:   q,
		loading: true,
		showMA:  true,
	}
}

// Init initializes the charts screen
func (m ChartsModel) Init() tea.Cmd {
	return m.loadData
}

func (m ChartsModel) loadData() tea.Msg {
	data, err := m.query.Charts()
	return chartsDataMsg{data: data, err: err}
}

type chartsDataMsg struct {
	data *service.ChartsData
	err  error
}

// Update handles messages
func (m ChartsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chartsDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			m.showMA = !m.showMA
		}
	}
	return m, nil
}

// View renders the charts screen
func (m ChartsModel) View() string {
	if m.loading {
		return "\n  Loading charts..."
	}

	if m.err != nil {
		return renderDataError(m.err)
	}

	sections := []string{
		m.renderWeightChart(),
		m.renderMacroChart(),
		m.renderProjectionChart(),
		statusStyle.Render("m toggle moving average, [ ] range, r reload"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ChartsModel) renderWeightChart() string {
	title := fmt.Sprintf("Weight (%s)", rangeLabel(m.data.Range))
	if len(m.data.Weight) < 2 {
		return renderEmptyChart(title)
	}

	weights := make([]float64, len(m.data.Weight))
	for i, p := range m.data.Weight {
		weights[i] = p.Value
	}

	var graph string
	var caption string
	if m.showMA && len(m.data.WeightMA) > 0 {
		// Align the trailing average with the raw series by padding the
		// smoothed-out leading days with gaps.
		ma := make([]float64, len(weights))
		offset := len(weights) - len(m.data.WeightMA)
		for i := range ma {
			if i < offset {
				ma[i] = math.NaN()
			} else {
				ma[i] = m.data.WeightMA[i-offset].Value
			}
		}
		graph = asciigraph.PlotMany([][]float64{weights, ma},
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Precision(1),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		)
		caption = fmt.Sprintf("daily (red) vs %d-day average (blue)", m.data.MAWindow)
	} else {
		graph = asciigraph.Plot(weights,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Precision(1),
		)
		caption = "daily weight, kg"
		if len(m.data.WeightMA) == 0 {
			caption += fmt.Sprintf(" (need %d+ days for the average)", m.data.MAWindow)
		}
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title), graph, statusStyle.Render(caption)))
}

func (m ChartsModel) renderMacroChart() string {
	title := "Macro Energy Split"
	if len(m.data.Macro) < 2 {
		return renderEmptyChart(title)
	}

	protein := make([]float64, len(m.data.Macro))
	fat := make([]float64, len(m.data.Macro))
	carbs := make([]float64, len(m.data.Macro))
	for i, p := range m.data.Macro {
		protein[i] = p.ProteinKcal
		fat[i] = p.FatKcal
		carbs[i] = p.CarbsKcal
	}

	graph := asciigraph.PlotMany([][]float64{protein, fat, carbs},
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red, asciigraph.Yellow),
	)

	caption := statusStyle.Render(fmt.Sprintf(
		"avg: protein %d (green), fat %d (red), carbs %d (yellow) = %d cal/day",
		m.data.AvgProtein, m.data.AvgFat, m.data.AvgCarbs, m.data.AvgTotal))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title), graph, caption))
}

func (m ChartsModel) renderProjectionChart() string {
	title := "Projected Weight Change from Deficit"
	if len(m.data.Cumulative) < 2 {
		return renderEmptyChart(title)
	}

	values := make([]float64, len(m.data.Cumulative))
	for i, p := range m.data.Cumulative {
		values[i] = p.Value
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(2),
	)

	caption := statusStyle.Render(fmt.Sprintf(
		"cumulative: %+.3f kg over %d days", m.data.ProjectedTotal, len(values)))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title), graph, caption))
}

func renderEmptyChart(title string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		statusStyle.Render("Not enough data to chart")))
}
