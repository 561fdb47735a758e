package tui

import (
	"github.com/charmbracelet/lipgloss"

	"fitdash/internal/metrics"
)

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	goodColor    = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	dangerColor  = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light gray
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and boxes
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(20)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Background(primaryColor).
				Foreground(textColor)

	// Status classification
	statusGoodStyle = lipgloss.NewStyle().
			Foreground(goodColor)

	statusWarningStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	statusDangerStyle = lipgloss.NewStyle().
				Foreground(dangerColor)

	statusNeutralStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Trends
	trendUpStyle = lipgloss.NewStyle().
			Foreground(goodColor)

	trendDownStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	trendFlatStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Status line
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(mutedColor)
)

// statusStyleFor maps a metric classification to its render style.
func statusStyleFor(s metrics.Status) lipgloss.Style {
	switch s {
	case metrics.StatusGood:
		return statusGoodStyle
	case metrics.StatusWarning:
		return statusWarningStyle
	case metrics.StatusDanger:
		return statusDangerStyle
	default:
		return statusNeutralStyle
	}
}

// RenderMetric renders a metric with label, value, and optional trend
func RenderMetric(label, value, trend string) string {
	trendStyle := trendFlatStyle
	if len(trend) > 0 {
		first := []rune(trend)[0]
		switch first {
		case '+', '↑':
			trendStyle = trendUpStyle
		case '-', '↓':
			trendStyle = trendDownStyle
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
		trendStyle.Render(" "+trend),
	)
}

// RenderProgressBar renders an ASCII progress bar colored by status. The
// percent is on a 0-100 scale.
func RenderProgressBar(percent float64, width int, status metrics.Status) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	fullStyle := statusStyleFor(status)
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += fullStyle.Render("█")
		} else {
			bar += progressEmptyStyle.Render("░")
		}
	}
	return bar
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
