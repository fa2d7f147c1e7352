package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

func render(cfg stepper.Config, glyphs Glyphs, width int) string {
	return NewStepperView(stepper.Resolve(cfg), NewTheme(""), glyphs, width).View()
}

func TestStepperHorizontalDefault(t *testing.T) {
	t.Parallel()

	out := render(stepper.DefaultConfig(), UnicodeGlyphs, 80)
	require.Contains(t, out, "(1)")
	require.Contains(t, out, "(2)")
	require.Contains(t, out, "(3)")
	require.Contains(t, out, "Step one")
	require.Contains(t, out, "Optional")
	require.Contains(t, out, "─")

	// Alternative labels sit below the markers.
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	require.Contains(t, lines[0], "(1)")
	require.NotContains(t, lines[0], "Step one")
}

func TestStepperHorizontalLabelsBeside(t *testing.T) {
	t.Parallel()

	cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetAlternativeLabel{Value: false})
	out := render(cfg, UnicodeGlyphs, 80)
	require.Len(t, strings.Split(out, "\n"), 1)
	require.Contains(t, out, "(1) Step one")
}

func TestStepperFillStretchesConnectors(t *testing.T) {
	t.Parallel()

	cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetAlternativeLabel{Value: false})
	stretched := render(cfg, UnicodeGlyphs, 120)

	compact := render(stepper.Reduce(cfg, stepper.SetFill{Value: false}), UnicodeGlyphs, 120)
	require.Greater(t, lipgloss.Width(stretched), lipgloss.Width(compact))

	accordion := render(stepper.Reduce(cfg, stepper.SetAccordion{Value: true}), UnicodeGlyphs, 120)
	require.Equal(t, lipgloss.Width(compact), lipgloss.Width(accordion))
}

func TestStepperIconSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		set    stepper.IconSet
		glyphs Glyphs
		want   []string
	}{
		{stepper.Alphabetical{}, UnicodeGlyphs, []string{"(A)", "(B)", "(C)"}},
		{stepper.Dotted{}, UnicodeGlyphs, []string{"(●)"}},
		{stepper.Symbolic{}, UnicodeGlyphs, []string{"(☺)", "(⚙)", "(☁)"}},
		{stepper.Symbolic{}, ASCIIGlyphs, []string{"(@)", "(#)", "(~)"}},
	}
	for _, tt := range tests {
		cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetIconSet{Set: tt.set})
		out := render(cfg, tt.glyphs, 80)
		for _, want := range tt.want {
			require.Contains(t, out, want, "icon set %s", tt.set.Name())
		}
	}
}

func TestStepperLargeAndErrored(t *testing.T) {
	t.Parallel()

	cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetLarge{Value: true})
	cfg = stepper.Reduce(cfg, stepper.SetErrored{Value: true})
	out := render(cfg, UnicodeGlyphs, 80)

	require.Contains(t, out, "( 1 )")
	require.Contains(t, out, "( ! )")
	require.NotContains(t, out, "( 2 )")
}

func TestStepperVerticalWithContent(t *testing.T) {
	t.Parallel()

	cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetHasContent{Value: true})
	out := render(cfg, UnicodeGlyphs, 80)

	lines := strings.Split(out, "\n")
	require.Contains(t, lines[0], "(1) Step one")
	require.Contains(t, out, "│")
	require.Contains(t, out, "Lorem ipsum")
	require.Contains(t, out, "[↓ Next]")
	require.Contains(t, out, "[↑ Previous]")
	require.Contains(t, out, "[✓ Complete]")
	// Every step is expanded outside accordion mode.
	require.Equal(t, 3, strings.Count(out, "Ut enim"))
}

func TestStepperAccordionExpandsActiveStepOnly(t *testing.T) {
	t.Parallel()

	cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetHasContent{Value: true})
	cfg = stepper.Reduce(cfg, stepper.SetAccordion{Value: true})
	cfg = stepper.Reduce(cfg, stepper.Next{})
	out := render(cfg, UnicodeGlyphs, 80)

	require.Equal(t, 1, strings.Count(out, "Ut enim"))
	require.Contains(t, out, "▾ (2) Step two")
	require.Contains(t, out, "▸ (1) Step one")
}

func TestStepperVerticalWithoutContent(t *testing.T) {
	t.Parallel()

	cfg := stepper.Reduce(stepper.DefaultConfig(), stepper.SetVertical{Value: true})
	out := render(cfg, ASCIIGlyphs, 80)

	require.Len(t, strings.Split(out, "\n"), 5)
	require.Contains(t, out, "|")
	require.NotContains(t, out, "Lorem")
}
