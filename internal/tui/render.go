package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui/components"
)

// RenderStatic renders the preview, the navigation affordances and the
// resolved summary for cfg without the interactive panel. It backs the render
// command and the non-terminal fallback.
func RenderStatic(cfg stepper.Config, look Appearance) string {
	m := NewModel(Options{Appearance: look})
	view := stepper.Resolve(cfg)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(title),
		m.previewBlock(view, m.width),
		m.theme.Section.Render("Resolved"),
		components.NewSummary(view).View(),
	)
}
