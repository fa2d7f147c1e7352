package components

import "github.com/charmbracelet/lipgloss"

var (
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	textColor    = lipgloss.Color("252")
)

// Theme carries the styles shared by the panel and the stepper preview.
type Theme struct {
	Accent lipgloss.Color

	Title     lipgloss.Style
	Section   lipgloss.Style
	Focused   lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Active    lipgloss.Style
	Completed lipgloss.Style
	Errored   lipgloss.Style
	Button    lipgloss.Style
	Disabled  lipgloss.Style
	Box       lipgloss.Style
}

// NewTheme builds the styles around an accent colour (ANSI index or #RRGGBB).
func NewTheme(accent string) Theme {
	if accent == "" {
		accent = "99"
	}
	color := lipgloss.Color(accent)

	return Theme{
		Accent:    color,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(color),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(color).MarginTop(1),
		Focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Text:      lipgloss.NewStyle().Foreground(textColor),
		Muted:     lipgloss.NewStyle().Foreground(mutedColor),
		Active:    lipgloss.NewStyle().Bold(true).Foreground(color),
		Completed: lipgloss.NewStyle().Foreground(successColor),
		Errored:   lipgloss.NewStyle().Bold(true).Foreground(errorColor),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(color),
		Disabled:  lipgloss.NewStyle().Foreground(mutedColor).Faint(true),
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1),
	}
}
