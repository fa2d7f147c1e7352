package components

import "github.com/alexisbeaulieu97/stepperlab/internal/stepper"

// Glyphs is the character set used for markers and connectors.
type Glyphs struct {
	On, Off        string
	Cursor         string
	Placeholder    string
	Error          string
	Horizontal     string
	Vertical       string
	Expanded       string
	Collapsed      string
	ArrowLeft      string
	ArrowRight     string
	ArrowUp        string
	ArrowDown      string
	Undo           string
	Tick           string
	SelectOpen     string
	SelectClose    string
	symbols        map[string]string
	FillCharacters [2]rune
}

// UnicodeGlyphs is the default character set.
var UnicodeGlyphs = Glyphs{
	On: "◉", Off: "○",
	Cursor:      "›",
	Placeholder: "●",
	Error:       "!",
	Horizontal:  "─",
	Vertical:    "│",
	Expanded:    "▾",
	Collapsed:   "▸",
	ArrowLeft:   "←",
	ArrowRight:  "→",
	ArrowUp:     "↑",
	ArrowDown:   "↓",
	Undo:        "↺",
	Tick:        "✓",
	SelectOpen:  "‹",
	SelectClose: "›",
	symbols: map[string]string{
		"person": "☺",
		"cog":    "⚙",
		"cloud":  "☁",
	},
	FillCharacters: [2]rune{'█', '░'},
}

// ASCIIGlyphs is the fallback for terminals without unicode support.
var ASCIIGlyphs = Glyphs{
	On: "[x]", Off: "[ ]",
	Cursor:      ">",
	Placeholder: "*",
	Error:       "!",
	Horizontal:  "-",
	Vertical:    "|",
	Expanded:    "v",
	Collapsed:   ">",
	ArrowLeft:   "<-",
	ArrowRight:  "->",
	ArrowUp:     "^",
	ArrowDown:   "v",
	Undo:        "<>",
	Tick:        "ok",
	SelectOpen:  "<",
	SelectClose: ">",
	symbols: map[string]string{
		"person": "@",
		"cog":    "#",
		"cloud":  "~",
	},
	FillCharacters: [2]rune{'#', '.'},
}

// NewGlyphs picks the character set.
func NewGlyphs(ascii bool) Glyphs {
	if ascii {
		return ASCIIGlyphs
	}
	return UnicodeGlyphs
}

// Switch renders a boolean control.
func (g Glyphs) Switch(on bool) string {
	if on {
		return g.On
	}
	return g.Off
}

// Icon renders the text inside a step marker.
func (g Glyphs) Icon(icon stepper.Icon) string {
	switch icon.Kind {
	case stepper.IconGlyph:
		return icon.Text
	case stepper.IconSymbol:
		if s, ok := g.symbols[icon.Text]; ok {
			return s
		}
		return icon.Text
	default:
		return g.Placeholder
	}
}

// Arrows returns the previous/next arrows for the layout axis.
func (g Glyphs) Arrows(orientation stepper.Orientation) (prev, next string) {
	if orientation == stepper.Vertical {
		return g.ArrowUp, g.ArrowDown
	}
	return g.ArrowLeft, g.ArrowRight
}
