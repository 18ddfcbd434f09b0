package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#10B981") // Green
	Danger     = lipgloss.Color("#EF4444") // Red
	MutedColor = lipgloss.Color("#6B7280") // Gray
	Subtle     = lipgloss.Color("#374151") // Dark gray

	Muted = lipgloss.NewStyle().
		Foreground(MutedColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Buttons
	SelectedItem = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 1)

	NormalItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Manifest preview
	PreviewBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	InsertedLine = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InfoValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Messages
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// FormatHelp formats help text with highlighted keys
func FormatHelp(pairs ...string) string {
	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += "  "
		}
		result += HelpKey.Render(pairs[i]) + " " + pairs[i+1]
	}
	return HelpBar.Render(result)
}
