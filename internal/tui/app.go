package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitdash/internal/series"
	"fitdash/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenCharts
	ScreenPlan
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	charts    ChartsModel
	plan      PlanModel
	help      HelpModel

	// Services
	state     *service.State
	query     *service.QueryService
	refresher *service.Refresher

	refreshEvery time.Duration

	// Window dimensions
	width  int
	height int

	// Status message
	status    string
	statusErr bool
}

// NewApp creates a new App with all dependencies
func NewApp(state *service.State, query *service.QueryService, refresher *service.Refresher, refreshEvery time.Duration) *App {
	if refreshEvery <= 0 {
		refreshEvery = service.DefaultRefreshMinutes * time.Minute
	}
	return &App{
		screen:       ScreenDashboard,
		state:        state,
		query:        query,
		refresher:    refresher,
		refreshEvery: refreshEvery,
		dashboard:    NewDashboardModel(query),
		charts:       NewChartsModel(query),
		plan:         NewPlanModel(),
		help:         NewHelpModel(),
	}
}

// Init starts the first reload, the plan fetch, and the refresh timer.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.reloadCmd(), a.loadPlanCmd(), a.tickCmd())
}

type reloadDoneMsg struct {
	result service.RefreshResult
	err    error
}

type planLoadedMsg struct {
	doc string
	err error
}

type refreshTickMsg time.Time

type exportDoneMsg struct {
	filename string
	err      error
}

func (a *App) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := a.refresher.Reload(context.Background())
		return reloadDoneMsg{result: result, err: err}
	}
}

func (a *App) loadPlanCmd() tea.Cmd {
	return func() tea.Msg {
		doc, err := a.refresher.LoadPlan(context.Background())
		return planLoadedMsg{doc: doc, err: err}
	}
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (a *App) exportCmd() tea.Cmd {
	return func() tea.Msg {
		filename, contents, err := a.query.Export(time.Now())
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := os.WriteFile(filename, []byte(contents), 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: filename}
	}
}

// reloadScreens re-queries the data-bearing screens after the series or the
// range selection changed.
func (a *App) reloadScreens() tea.Cmd {
	return tea.Batch(a.dashboard.Init(), a.charts.Init())
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			return a, a.dashboard.Init()
		case "2":
			a.screen = ScreenCharts
			return a, a.charts.Init()
		case "3":
			a.screen = ScreenPlan
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		case "[":
			a.cycleRange(-1)
			return a, a.reloadScreens()
		case "]":
			a.cycleRange(1)
			return a, a.reloadScreens()
		case "a":
			a.state.SetRange(series.RangeAll)
			return a, a.reloadScreens()
		case "r":
			a.status = "Reloading..."
			a.statusErr = false
			return a, a.reloadCmd()
		case "e":
			return a, a.exportCmd()
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case reloadDoneMsg:
		if msg.err != nil {
			// Keep whatever was on screen; just surface the failure.
			a.status = fmt.Sprintf("Reload failed: %v", msg.err)
			a.statusErr = true
			return a, a.reloadScreens()
		}
		a.status = fmt.Sprintf("Loaded %d days from %d feed rows at %s",
			msg.result.Samples, msg.result.Rows, time.Now().Format("15:04:05"))
		a.statusErr = false
		return a, a.reloadScreens()

	case refreshTickMsg:
		return a, tea.Batch(a.reloadCmd(), a.tickCmd())

	case exportDoneMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("Export failed: %v", msg.err)
			a.statusErr = true
		} else {
			a.status = "Exported " + msg.filename
			a.statusErr = false
		}
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenCharts:
		var m tea.Model
		m, cmd = a.charts.Update(msg)
		a.charts = m.(ChartsModel)
	case ScreenPlan:
		var m tea.Model
		m, cmd = a.plan.Update(msg)
		a.plan = m.(PlanModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	// The plan screen needs resize and content messages even when hidden.
	if a.screen != ScreenPlan {
		switch msg.(type) {
		case planLoadedMsg, tea.WindowSizeMsg:
			var m tea.Model
			var planCmd tea.Cmd
			m, planCmd = a.plan.Update(msg)
			a.plan = m.(PlanModel)
			cmd = tea.Batch(cmd, planCmd)
		}
	}

	return a, cmd
}

func (a *App) cycleRange(step int) {
	current := a.state.Range()
	idx := 0
	for i, sel := range series.RangeSelectors {
		if sel == current {
			idx = i
			break
		}
	}
	n := len(series.RangeSelectors)
	a.state.SetRange(series.RangeSelectors[((idx+step)%n+n)%n])
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenCharts:
		content = a.charts.View()
	case ScreenPlan:
		content = a.plan.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fitness Dashboard")
}

func rangeLabel(selector string) string {
	if selector == series.RangeAll {
		return "all"
	}
	return selector + "d"
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Charts", ScreenCharts},
		{"3", "Plan", ScreenPlan},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navActiveStyle.Render("Range: "+rangeLabel(a.state.Range()))
	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return statusStyle.Render(errorStyle.Render(a.status))
	}
	return statusStyle.Render(a.status)
}
