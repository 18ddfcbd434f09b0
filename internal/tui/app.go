package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"wingetenhance/internal/manifest"
	"wingetenhance/internal/tui/screens"
)

// App wraps the confirm screen and records the user's decision
type App struct {
	screen    *screens.ConfirmScreen
	confirmed bool
	done      bool
}

// NewApp creates the confirm application for a planned enhancement
func NewApp(plan *manifest.Plan) *App {
	return &App{
		screen: screens.NewConfirmScreen(plan.Manifest.Path, plan.Result),
	}
}

// Confirmed reports whether the user accepted the write
func (a *App) Confirmed() bool {
	return a.confirmed
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.screen.Init()
}

// Update handles events
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ConfirmedMsg:
		a.confirmed = true
		a.done = true
		return a, tea.Quit
	case screens.CancelledMsg:
		a.done = true
		return a, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.done = true
			return a, tea.Quit
		}
	}

	_, cmd := a.screen.Update(msg)
	return a, cmd
}

// View renders the app
func (a *App) View() string {
	if a.done {
		return ""
	}
	return a.screen.View()
}

// Confirm shows the preview of plan and blocks until the user decides
func Confirm(plan *manifest.Plan) (bool, error) {
	app := NewApp(plan)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return false, fmt.Errorf("failed to run confirm prompt: %w", err)
	}
	return app.Confirmed(), nil
}
