package stepper

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

// IconKind distinguishes what an Icon carries.
type IconKind int

const (
	// IconPlaceholder renders as an empty marker.
	IconPlaceholder IconKind = iota
	// IconGlyph renders its text inside the marker.
	IconGlyph
	// IconSymbol names a symbolic icon.
	IconSymbol
)

// Icon is one element of an icon sequence.
type Icon struct {
	Kind IconKind
	Text string
}

// IconSet selects the three icons rendered for the steps. The interface is
// sealed: Numbered, Dotted, Alphabetical and Symbolic are the only
// implementations.
type IconSet interface {
	// Name is the identifier used by flags and script files.
	Name() string
	// Label is the human readable option text.
	Label() string
	// Icons returns the fixed sequence, one icon per step.
	Icons() [StepCount]Icon
	iconSet()
}

// Numbered renders 1, 2, 3.
type Numbered struct{}

// Dotted renders empty markers.
type Dotted struct{}

// Alphabetical renders A, B, C.
type Alphabetical struct{}

// Symbolic renders the person, cog and cloud icons.
type Symbolic struct{}

func (Numbered) Name() string      { return "numbered" }
func (Dotted) Name() string        { return "dotted" }
func (Alphabetical) Name() string  { return "alphabetical" }
func (Symbolic) Name() string      { return "icons" }
func (Numbered) Label() string     { return "Numbered" }
func (Dotted) Label() string       { return "Dotted" }
func (Alphabetical) Label() string { return "Alphabetical" }
func (Symbolic) Label() string     { return "Icons" }

func (Numbered) Icons() [StepCount]Icon {
	return [StepCount]Icon{glyph("1"), glyph("2"), glyph("3")}
}

func (Dotted) Icons() [StepCount]Icon {
	return [StepCount]Icon{}
}

func (Alphabetical) Icons() [StepCount]Icon {
	return [StepCount]Icon{glyph("A"), glyph("B"), glyph("C")}
}

func (Symbolic) Icons() [StepCount]Icon {
	return [StepCount]Icon{symbol("person"), symbol("cog"), symbol("cloud")}
}

func (Numbered) iconSet()     {}
func (Dotted) iconSet()       {}
func (Alphabetical) iconSet() {}
func (Symbolic) iconSet()     {}

func glyph(text string) Icon  { return Icon{Kind: IconGlyph, Text: text} }
func symbol(name string) Icon { return Icon{Kind: IconSymbol, Text: name} }

// IconSets lists every icon set in option order.
func IconSets() []IconSet {
	return []IconSet{Numbered{}, Dotted{}, Alphabetical{}, Symbolic{}}
}

// NextIconSet returns the set after current in option order, wrapping around.
func NextIconSet(current IconSet) IconSet {
	sets := IconSets()
	for i, set := range sets {
		if set == current {
			return sets[(i+1)%len(sets)]
		}
	}
	return sets[0]
}

// ParseIconSet maps an identifier from the edge to its IconSet.
func ParseIconSet(name string) (IconSet, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, set := range IconSets() {
		if set.Name() == normalized {
			return set, nil
		}
	}
	return nil, apperrors.NewValidationError(FieldIconSet, fmt.Sprintf("unknown icon set %q (want numbered, dotted, alphabetical or icons)", name), nil)
}
