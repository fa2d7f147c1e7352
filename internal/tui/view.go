package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui/components"
)

const title = "Stepper configurator"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.configurator.View()
	panel := m.theme.Box.Width(panelWidth).Render(m.optionList(view).View(m.theme, m.glyphs))

	previewWidth := m.width - 4
	if m.width >= wideLayout {
		previewWidth = m.width - panelWidth - 8
	}
	preview := m.theme.Box.Render(m.previewBlock(view, previewWidth))

	var body string
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", preview)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, panel, preview)
	}

	sections := []string{m.theme.Title.Render(title), body}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections,
		m.theme.Section.Render("Progress"),
		m.progress.View(view.ActiveStep),
		summaryStyle.Render(components.NewSummary(view).View()),
		helpStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) optionList(view stepper.View) components.OptionList {
	cfg := m.configurator.Snapshot()
	entries := []components.OptionEntry{
		{Section: "Props", Label: "Vertical", On: cfg.Vertical()},
		{Section: "Props", Label: "Alternative Label", On: cfg.AlternativeLabel},
		{Section: "Props", Label: "Large", On: cfg.Large},
		{Section: "Props", Label: "Accordion", On: cfg.Accordion},
		{Section: "Props", Label: "Fill", On: cfg.Fill, Disabled: !view.Controls.FillEnabled},
		{Section: "Example", Label: "Icon Type", Select: true, Value: cfg.IconSet.Label()},
		{Section: "Example", Label: "With content", On: cfg.HasContent},
		{Section: "Example", Label: "Error step two", On: cfg.ErroredStepTwo},
	}
	entries[m.focus].Focused = true
	return components.NewOptionList(entries)
}

// previewBlock renders the widget followed by the outer navigation bar or the
// reset button.
func (m Model) previewBlock(view stepper.View, width int) string {
	block := components.NewStepperView(view, m.theme, m.glyphs, width).View()
	if controls := m.navigationView(view); controls != "" {
		block = lipgloss.JoinVertical(lipgloss.Left, block, "", controls)
	}
	return block
}

func (m Model) navigationView(view stepper.View) string {
	controls := view.Controls
	var buttons []string
	if controls.ShowNavigation {
		prev, next := m.glyphs.Arrows(view.Orientation)
		buttons = append(buttons,
			components.NewButton("Previous", components.ButtonOptions{Icon: prev, Disabled: !controls.PreviousEnabled}).View(m.theme),
			components.NewButton("Next", components.ButtonOptions{Icon: next, Disabled: !controls.NextEnabled, Primary: true}).View(m.theme),
		)
	}
	if controls.ShowReset {
		buttons = append(buttons, components.NewButton("Reset", components.ButtonOptions{Icon: m.glyphs.Undo}).View(m.theme))
	}
	return strings.Join(buttons, " ")
}
