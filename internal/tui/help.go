package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Charts"},
		{"3", "Workout plan"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	rangeSection := m.renderSection("Time Range", []keyHelp{
		{"[ / ]", "Previous / next range (7, 14, 30, 90, all days)"},
		{"a", "Show the whole series"},
	})
	sections = append(sections, rangeSection)

	dataSection := m.renderSection("Data", []keyHelp{
		{"r", "Reload the feed now"},
		{"e", "Export the current range to a CSV file"},
	})
	sections = append(sections, dataSection)

	dashSection := m.renderSection("Dashboard", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Open the selected metric's history"},
		{"esc", "Close the history panel"},
	})
	sections = append(sections, dashSection)

	chartSection := m.renderSection("Charts", []keyHelp{
		{"m", "Toggle the moving-average overlay"},
	})
	sections = append(sections, chartSection)

	statusSection := m.renderStatusHelp()
	sections = append(sections, statusSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(goodColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderStatusHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(goodColor).Render("Status Colors"))
	lines = append(lines, "")

	entries := []struct {
		dot  string
		desc string
	}{
		{statusGoodStyle.Render("●"), "Inside the healthy range"},
		{statusWarningStyle.Render("●"), "Near a range boundary"},
		{statusDangerStyle.Render("●"), "Outside the range"},
		{statusNeutralStyle.Render("●"), "Informational, or no reading today"},
	}

	for _, e := range entries {
		lines = append(lines, "  "+e.dot+" "+helpDescStyle.Render(e.desc))
	}
	lines = append(lines, "")
	lines = append(lines, helpDescStyle.Render("  Muscle, bone mass, and calorie targets scale with your current weight."))

	return strings.Join(lines, "\n")
}
