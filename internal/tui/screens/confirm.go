package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"wingetenhance/internal/manifest"
	"wingetenhance/internal/tui/styles"
)

// lines taken by everything around the preview box
const chromeHeight = 12

// ConfirmScreen previews an enhanced manifest and asks whether to write it
type ConfirmScreen struct {
	path     string
	result   manifest.Result
	preview  viewport.Model
	selected int // 0 = yes, 1 = no
	width    int
	height   int
}

// ConfirmedMsg is sent when the write is confirmed
type ConfirmedMsg struct {
	Path string
}

// CancelledMsg is sent when the write is declined
type CancelledMsg struct{}

// NewConfirmScreen creates a confirm screen for the enhancement of path
func NewConfirmScreen(path string, result manifest.Result) *ConfirmScreen {
	s := &ConfirmScreen{
		path:   path,
		result: result,
		width:  80,
		height: 24,
	}
	s.preview = viewport.New(s.width-4, s.height-chromeHeight)
	s.preview.SetContent(RenderPreview(result))
	return s
}

// Init initializes the screen
func (s *ConfirmScreen) Init() tea.Cmd {
	return nil
}

// Update handles events
func (s *ConfirmScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.preview.Width = max(msg.Width-4, 20)
		s.preview.Height = max(msg.Height-chromeHeight, 3)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			s.selected = 0
			return s, nil
		case "right", "l":
			s.selected = 1
			return s, nil
		case "y", "Y":
			s.selected = 0
			return s, s.confirm()
		case "n", "N", "esc", "q":
			return s, func() tea.Msg { return CancelledMsg{} }
		case "enter":
			return s, s.confirm()
		}
	}

	var cmd tea.Cmd
	s.preview, cmd = s.preview.Update(msg)
	return s, cmd
}

func (s *ConfirmScreen) confirm() tea.Cmd {
	if s.selected == 0 {
		path := s.path
		return func() tea.Msg {
			return ConfirmedMsg{Path: path}
		}
	}
	return func() tea.Msg { return CancelledMsg{} }
}

// View renders the screen
func (s *ConfirmScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Enhance Manifest"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Write %d inserted line(s) to %s?",
		len(s.result.Inserted), styles.InfoValue.Render(s.path))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Adds: " + strings.Join(s.result.Presence.Missing(), " ")))
	b.WriteString("\n")

	b.WriteString(styles.PreviewBox.Render(s.preview.View()))
	b.WriteString("\n\n")

	var yesBtn, noBtn string
	if s.selected == 0 {
		yesBtn = styles.SelectedItem.Render(" Yes ")
		noBtn = styles.NormalItem.Render(" No ")
	} else {
		yesBtn = styles.NormalItem.Render(" Yes ")
		noBtn = styles.SelectedItem.Render(" No ")
	}

	b.WriteString(yesBtn + "  " + noBtn)
	b.WriteString("\n")

	b.WriteString(styles.FormatHelp(
		"y", "write",
		"n", "cancel",
		"↑/↓", "scroll",
		"←/→", "select",
		"enter", "confirm",
	))

	return b.String()
}

// RenderPreview renders the enhanced lines, marking the inserted ones
func RenderPreview(result manifest.Result) string {
	var b strings.Builder
	for i, line := range result.Lines {
		line = strings.TrimRight(line, "\r\n")
		if result.IsInserted(i) {
			b.WriteString(styles.InsertedLine.Render("+ " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(result.Lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
