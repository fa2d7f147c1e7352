package components

import "fmt"

// ButtonOptions defines how a button renders.
type ButtonOptions struct {
	Icon     string
	Disabled bool
	Primary  bool
}

// Button is a bracketed, non-interactive button label. Key handling lives in
// the model; the button only reflects enablement.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a button with the given label and options.
func NewButton(label string, opts ButtonOptions) Button {
	return Button{label: label, options: opts}
}

// View renders the button with the theme.
func (b Button) View(theme Theme) string {
	text := b.label
	if b.options.Icon != "" {
		text = b.options.Icon + " " + text
	}
	text = fmt.Sprintf("[%s]", text)

	switch {
	case b.options.Disabled:
		return theme.Disabled.Render(text)
	case b.options.Primary:
		return theme.Active.Render(text)
	default:
		return theme.Button.Render(text)
	}
}
