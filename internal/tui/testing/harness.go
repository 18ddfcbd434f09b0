package testing

import (
	tea "github.com/charmbracelet/bubbletea"
	"wingetenhance/internal/manifest"
)

// TestHarness drives a Bubble Tea model with synthetic messages
type TestHarness struct {
	model tea.Model
}

// NewTestHarness creates a new test harness wrapping a Bubble Tea model
func NewTestHarness(model tea.Model) *TestHarness {
	return &TestHarness{model: model}
}

// Model returns the current model state
func (h *TestHarness) Model() tea.Model {
	return h.model
}

// SendKey sends a single key message and returns the resulting command
func (h *TestHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(KeyMsg(key))
}

// SendMsg sends any tea.Msg to the model
func (h *TestHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendWindowSize sends a window size message
func (h *TestHarness) SendWindowSize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// ExecuteCmd runs cmd and feeds the message it produces back into the model
func (h *TestHarness) ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg != nil {
		h.model, _ = h.model.Update(msg)
	}
	return msg
}

// View returns the current view of the model
func (h *TestHarness) View() string {
	return h.model.View()
}

// KeyMsg converts a key name such as "enter", "esc", "down" or "ctrl+c"
// to a tea.KeyMsg. Anything else is sent as runes.
func KeyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// TestPlan returns a plan enhancing a minimal installer manifest
func TestPlan(path string) *manifest.Plan {
	lines := manifest.SplitLines("ManifestType: installer\nPackageVersion: 1.2.3\nInstallers:\n- Arch: x64\n")
	return &manifest.Plan{
		Manifest: &manifest.Manifest{Path: path, Lines: lines},
		Result:   manifest.Enhance(lines, manifest.DefaultFields()),
	}
}
