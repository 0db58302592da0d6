package console

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles are bound to the renderer of the console's output, so colors are
// dropped when output is not a terminal.
type styles struct {
	title  lipgloss.Style
	item   lipgloss.Style
	prompt lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		item: r.NewStyle(),
		prompt: r.NewStyle().
			Foreground(colorAccent),
		result: r.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		err: r.NewStyle().
			Foreground(colorError),
		muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}
