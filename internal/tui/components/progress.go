package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how far the cursor has moved through the steps.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given step total.
func NewProgress(total int, glyphs Glyphs) Progress {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
		progress.WithFillCharacters(glyphs.FillCharacters[0], glyphs.FillCharacters[1]),
	)
	bar.Width = 24
	return Progress{bar: bar, total: total}
}

// View renders the bar for the cursor position. Positions outside the step
// range are shown as-is in the label and clamped in the bar.
func (p Progress) View(position int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Max(0, math.Min(1.0, float64(position)/float64(p.total)))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", position, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
