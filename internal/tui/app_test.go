package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wingetenhance/internal/tui/screens"
	tt "wingetenhance/internal/tui/testing"
)

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_ConfirmFlow(t *testing.T) {
	app := NewApp(tt.TestPlan("m.yaml"))
	h := tt.NewTestHarness(app)

	msg := h.ExecuteCmd(h.SendKey("y"))
	require.IsType(t, screens.ConfirmedMsg{}, msg)
	assert.True(t, app.Confirmed())
	assert.Empty(t, h.View())
}

func TestApp_CancelFlow(t *testing.T) {
	app := NewApp(tt.TestPlan("m.yaml"))
	h := tt.NewTestHarness(app)

	msg := h.ExecuteCmd(h.SendKey("n"))
	require.IsType(t, screens.CancelledMsg{}, msg)
	assert.False(t, app.Confirmed())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := NewApp(tt.TestPlan("m.yaml"))
	h := tt.NewTestHarness(app)

	assert.True(t, isQuit(t, h.SendKey("ctrl+c")))
	assert.False(t, app.Confirmed())
}

func TestApp_ScrollKeepsPrompt(t *testing.T) {
	app := NewApp(tt.TestPlan("m.yaml"))
	h := tt.NewTestHarness(app)

	h.SendKey("down")
	h.SendKey("pgdown")
	assert.Contains(t, h.View(), "Enhance Manifest")
	assert.False(t, app.Confirmed())
}
