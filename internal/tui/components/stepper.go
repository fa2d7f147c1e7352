package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

const (
	minConnector    = 3
	compactMaxWidth = 48
)

// StepperView renders a resolved stepper.View as text.
type StepperView struct {
	view   stepper.View
	theme  Theme
	glyphs Glyphs
	width  int
}

// NewStepperView creates the preview renderer. width is the space available
// to the widget.
func NewStepperView(view stepper.View, theme Theme, glyphs Glyphs, width int) StepperView {
	return StepperView{view: view, theme: theme, glyphs: glyphs, width: width}
}

// View renders the widget in its configured orientation.
func (s StepperView) View() string {
	if s.view.Orientation == stepper.Vertical {
		return s.vertical()
	}
	return s.horizontal()
}

func (s StepperView) horizontal() string {
	items := make([]string, 0, stepper.StepCount)
	used := 0
	for _, step := range s.view.Steps {
		var item string
		if s.view.AlternativeLabel {
			item = lipgloss.JoinVertical(lipgloss.Center, s.marker(step), s.label(step))
		} else {
			item = s.marker(step) + " " + s.label(step)
		}
		used += lipgloss.Width(item)
		items = append(items, item)
	}

	gap := minConnector
	if s.view.Fill == stepper.FillStretch && s.width > 0 {
		if free := (s.width - used - 2*(stepper.StepCount-1)) / (stepper.StepCount - 1); free > gap {
			gap = free
		}
	}
	connector := " " + s.theme.Muted.Render(strings.Repeat(s.glyphs.Horizontal, gap)) + " "

	parts := make([]string, 0, 2*stepper.StepCount-1)
	for i, item := range items {
		if i > 0 {
			parts = append(parts, connector)
		}
		parts = append(parts, item)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s StepperView) vertical() string {
	indent := strings.Repeat(" ", lipgloss.Width(s.marker(s.view.Steps[0]))/2)
	rail := indent + s.theme.Muted.Render(s.glyphs.Vertical)

	var lines []string
	for i, step := range s.view.Steps {
		header := s.marker(step) + " " + s.label(step)
		if step.Content != nil && s.view.Fill == stepper.FillAccordion {
			fold := s.glyphs.Collapsed
			if step.Active {
				fold = s.glyphs.Expanded
			}
			header = s.theme.Muted.Render(fold) + " " + header
		}
		lines = append(lines, header)

		if s.expanded(step) {
			for _, line := range strings.Split(s.content(step), "\n") {
				lines = append(lines, rail+"  "+line)
			}
		}
		if i < stepper.StepCount-1 {
			lines = append(lines, rail)
		}
	}
	return strings.Join(lines, "\n")
}

// expanded reports whether a step's body is shown. Accordion mode shows only
// the active step.
func (s StepperView) expanded(step stepper.StepView) bool {
	if step.Content == nil {
		return false
	}
	if s.view.Fill == stepper.FillAccordion {
		return step.Active
	}
	return true
}

func (s StepperView) content(step stepper.StepView) string {
	width := s.width - 6
	if s.view.Fill != stepper.FillStretch && width > compactMaxWidth {
		width = compactMaxWidth
	}
	if width < 20 {
		width = 20
	}

	paragraph := s.theme.Text.Width(width)
	if !step.Active {
		paragraph = s.theme.Muted.Width(width)
	}

	blocks := make([]string, 0, len(step.Content.Paragraphs)+1)
	for _, p := range step.Content.Paragraphs {
		blocks = append(blocks, paragraph.Render(p))
	}

	buttons := make([]string, 0, len(step.Content.Actions))
	for _, action := range step.Content.Actions {
		buttons = append(buttons, NewButton(action.String(), ButtonOptions{
			Icon:     s.actionIcon(action),
			Disabled: !step.Active,
			Primary:  action == stepper.ActionComplete,
		}).View(s.theme))
	}
	blocks = append(blocks, strings.Join(buttons, " "))

	return strings.Join(blocks, "\n")
}

func (s StepperView) actionIcon(action stepper.Action) string {
	prev, next := s.glyphs.Arrows(s.view.Orientation)
	switch action {
	case stepper.ActionPrevious:
		return prev
	case stepper.ActionComplete:
		return s.glyphs.Tick
	default:
		return next
	}
}

func (s StepperView) marker(step stepper.StepView) string {
	text := s.glyphs.Icon(step.Icon)
	if step.Errored {
		text = s.glyphs.Error
	}
	if s.view.Large {
		text = "( " + text + " )"
	} else {
		text = "(" + text + ")"
	}

	switch {
	case step.Errored:
		return s.theme.Errored.Render(text)
	case step.Active:
		return s.theme.Active.Render(text)
	case step.Completed:
		return s.theme.Completed.Render(text)
	default:
		return s.theme.Muted.Render(text)
	}
}

func (s StepperView) label(step stepper.StepView) string {
	style := s.theme.Text
	switch {
	case step.Errored:
		style = s.theme.Errored
	case step.Active:
		style = s.theme.Active
	}
	if s.view.Large {
		style = style.Bold(true)
	}

	label := style.Render(step.Label)
	if step.LabelInfo != "" {
		label += " " + s.theme.Muted.Italic(true).Render(step.LabelInfo)
	}
	return label
}
