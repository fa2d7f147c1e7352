package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

func TestOptionListGroupsSections(t *testing.T) {
	t.Parallel()

	list := NewOptionList([]OptionEntry{
		{Section: "Props", Label: "Vertical"},
		{Section: "Props", Label: "Fill", On: true, Disabled: true},
		{Section: "Example", Label: "Icon Type", Select: true, Value: "Numbered", Focused: true},
	})

	out := list.View(NewTheme(""), ASCIIGlyphs)
	lines := strings.Split(out, "\n")
	// The second heading carries a top margin.
	require.Len(t, lines, 6)
	require.Equal(t, "Props", strings.TrimSpace(lines[0]))
	require.Contains(t, lines[1], "[ ] Vertical")
	require.Contains(t, lines[2], "[x] Fill (disabled)")
	require.Contains(t, out, "Example")
	require.Equal(t, "Example", strings.TrimSpace(lines[4]))
	require.Contains(t, lines[5], "> Icon Type < Numbered >")
}

func TestOptionListEntriesAreCopies(t *testing.T) {
	t.Parallel()

	entries := []OptionEntry{{Label: "Large"}}
	list := NewOptionList(entries)
	entries[0].Label = "changed"

	got := list.Entries()
	require.Equal(t, "Large", got[0].Label)
	got[0].Label = "again"
	require.Equal(t, "Large", list.Entries()[0].Label)
}

func TestButtonView(t *testing.T) {
	t.Parallel()

	theme := NewTheme("")
	require.Equal(t, "[→ Next]", NewButton("Next", ButtonOptions{Icon: "→"}).View(theme))
	require.Equal(t, "[Reset]", NewButton("Reset", ButtonOptions{Disabled: true}).View(theme))
}

func TestGlyphs(t *testing.T) {
	t.Parallel()

	require.Equal(t, UnicodeGlyphs, NewGlyphs(false))
	require.Equal(t, ASCIIGlyphs, NewGlyphs(true))
	require.Equal(t, "[x]", ASCIIGlyphs.Switch(true))

	prev, next := UnicodeGlyphs.Arrows(stepper.Vertical)
	require.Equal(t, "↑", prev)
	require.Equal(t, "↓", next)
	prev, next = ASCIIGlyphs.Arrows(stepper.Horizontal)
	require.Equal(t, "<-", prev)
	require.Equal(t, "->", next)

	require.Equal(t, "?", UnicodeGlyphs.Icon(stepper.Icon{Kind: stepper.IconSymbol, Text: "?"}))
}
