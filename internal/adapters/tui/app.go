package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"docshelf/internal/adapters/tui/views"
	"docshelf/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	browser *views.BrowserModel
	help    *views.HelpModel
}

// NewApp creates a new TUI application. viewer and external may be nil.
func NewApp(source ports.SnapshotSource, rootPrefix string, viewer ports.Viewer, external ports.ExternalOpener) *App {
	return &App{
		state:   ViewBrowser,
		browser: views.NewBrowserModel(source, rootPrefix, viewer, external),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.browser.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil
	}

	// Keys go to the current view; everything else (load results, status) to the browser
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey && a.state == ViewHelp {
		_, cmd = a.help.Update(msg)
	} else {
		_, cmd = a.browser.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.browser.View()
}
