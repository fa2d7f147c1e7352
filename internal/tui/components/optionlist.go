package components

import (
	"strings"
)

// OptionEntry is one row of the options panel.
type OptionEntry struct {
	Section  string
	Label    string
	Select   bool
	On       bool
	Value    string
	Disabled bool
	Focused  bool
}

// OptionList renders the options panel rows grouped by section.
type OptionList struct {
	entries []OptionEntry
}

// NewOptionList constructs an option list component.
func NewOptionList(entries []OptionEntry) OptionList {
	clone := make([]OptionEntry, len(entries))
	copy(clone, entries)
	return OptionList{entries: clone}
}

// Entries returns the ordered entries.
func (o OptionList) Entries() []OptionEntry {
	clone := make([]OptionEntry, len(o.entries))
	copy(clone, o.entries)
	return clone
}

// View renders every row, starting a new heading whenever the section changes.
func (o OptionList) View(theme Theme, glyphs Glyphs) string {
	var lines []string
	section := ""
	for _, entry := range o.entries {
		if entry.Section != section {
			section = entry.Section
			heading := theme.Section.Render(section)
			if len(lines) == 0 {
				heading = theme.Title.Render(section)
			}
			lines = append(lines, heading)
		}
		lines = append(lines, renderOption(entry, theme, glyphs))
	}
	return strings.Join(lines, "\n")
}

func renderOption(entry OptionEntry, theme Theme, glyphs Glyphs) string {
	cursor := strings.Repeat(" ", len([]rune(glyphs.Cursor)))
	if entry.Focused {
		cursor = glyphs.Cursor
	}

	var control string
	if entry.Select {
		control = entry.Label + " " + glyphs.SelectOpen + " " + entry.Value + " " + glyphs.SelectClose
	} else {
		control = glyphs.Switch(entry.On) + " " + entry.Label
	}

	switch {
	case entry.Disabled:
		control = theme.Disabled.Render(control + " (disabled)")
	case entry.Focused:
		control = theme.Focused.Render(control)
	default:
		control = theme.Text.Render(control)
	}
	return cursor + " " + control
}
