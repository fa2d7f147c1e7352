package stepper

import "fmt"

// StepCount is the fixed number of steps the stepper renders.
const StepCount = 3

// LastStep is the index of the final step.
const LastStep = StepCount - 1

// Orientation is the stepper's layout axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		panic(fmt.Sprintf("stepper: invalid orientation %d", int(o)))
	}
}

// Config is the complete configurator state: display options and cursor.
type Config struct {
	Orientation      Orientation
	AlternativeLabel bool
	Large            bool
	Accordion        bool
	Fill             bool
	IconSet          IconSet
	HasContent       bool
	ErroredStepTwo   bool
	ActiveStep       int
}

// DefaultConfig returns the state the configurator starts in.
func DefaultConfig() Config {
	return Config{
		Orientation:      Horizontal,
		AlternativeLabel: true,
		Large:            false,
		Accordion:        false,
		Fill:             true,
		IconSet:          Numbered{},
		HasContent:       false,
		ErroredStepTwo:   false,
		ActiveStep:       0,
	}
}

// Vertical reports whether the layout axis is vertical.
func (c Config) Vertical() bool {
	return c.Orientation == Vertical
}

func orientationFor(vertical bool) Orientation {
	if vertical {
		return Vertical
	}
	return Horizontal
}

// Fields returns the configuration as a flat map keyed by change-event field
// name. Used for logging and serialised output.
func (c Config) Fields() map[string]any {
	return map[string]any{
		FieldVertical:         c.Vertical(),
		FieldAlternativeLabel: c.AlternativeLabel,
		FieldLarge:            c.Large,
		FieldAccordion:        c.Accordion,
		FieldFill:             c.Fill,
		FieldIconSet:          iconSetName(c.IconSet),
		FieldHasContent:       c.HasContent,
		FieldErroredStepTwo:   c.ErroredStepTwo,
		"activeStep":          c.ActiveStep,
	}
}

func iconSetName(set IconSet) string {
	if set == nil {
		return ""
	}
	return set.Name()
}
