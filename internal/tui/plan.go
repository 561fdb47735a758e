package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const planChromeHeight = 7 // header, nav, card border, footer

// PlanModel renders the fetched workout plan markdown in a scrollable
// viewport.
type PlanModel struct {
	viewport viewport.Model
	raw      string
	loaded   bool
	ready    bool
	err      error

	width  int
	height int
}

// NewPlanModel creates a new plan model
func NewPlanModel() PlanModel {
	return PlanModel{}
}

// Init initializes the plan screen
func (m PlanModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.loaded = true
		m.err = msg.err
		m.raw = msg.doc
		m.render()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-planChromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - planChromeHeight
		}
		m.render()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// render re-renders the markdown into the viewport at the current width.
func (m *PlanModel) render() {
	if !m.ready || m.raw == "" {
		return
	}

	wrap := m.viewport.Width
	if wrap > 100 {
		wrap = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.viewport.SetContent(m.raw)
		return
	}

	out, err := renderer.Render(m.raw)
	if err != nil {
		m.viewport.SetContent(m.raw)
		return
	}
	m.viewport.SetContent(out)
}

// View renders the plan screen
func (m PlanModel) View() string {
	title := cardTitleStyle.Render("Workout Plan")

	switch {
	case m.err != nil:
		return lipgloss.JoinVertical(lipgloss.Left, title,
			errorStyle.Render(fmt.Sprintf("  Plan fetch failed: %v", m.err)))
	case !m.loaded:
		return lipgloss.JoinVertical(lipgloss.Left, title, "  Loading plan...")
	case m.raw == "":
		return lipgloss.JoinVertical(lipgloss.Left, title,
			statusStyle.Render("  No plan configured. Set plan_url in the config file."))
	case !m.ready:
		return lipgloss.JoinVertical(lipgloss.Left, title, "  ...")
	}

	scroll := statusStyle.Render(fmt.Sprintf("  %3.0f%%  up/down scroll", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), scroll)
}
