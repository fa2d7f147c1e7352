package stepper

import "fmt"

// Reduce applies one intent to cfg and returns the reconciled configuration.
// Rules run in order on the same record, so when an intent sets a field that
// another rule would also touch, the later assignment wins.
func Reduce(cfg Config, in Intent) Config {
	switch in := in.(type) {
	case SetVertical:
		cfg.Orientation = orientationFor(in.Value)
		if in.Value {
			cfg.AlternativeLabel = false
		} else {
			cfg.HasContent = false
		}
	case SetAlternativeLabel:
		cfg.AlternativeLabel = in.Value
		if in.Value {
			cfg.HasContent = false
			cfg.Orientation = Horizontal
		}
	case SetHasContent:
		cfg.HasContent = in.Value
		if in.Value {
			cfg.AlternativeLabel = false
			cfg.Orientation = Vertical
		}
	case SetAccordion:
		// Fill keeps its stored value; only its control is disabled.
		cfg.Accordion = in.Value
	case SetFill:
		cfg.Fill = in.Value
		if in.Value {
			cfg.Accordion = false
		}
	case SetLarge:
		cfg.Large = in.Value
	case SetErrored:
		cfg.ErroredStepTwo = in.Value
	case SetIconSet:
		if in.Set == nil {
			panic("stepper: SetIconSet with nil icon set")
		}
		cfg.IconSet = in.Set
	case Next:
		cfg.ActiveStep++
	case Previous:
		cfg.ActiveStep--
	case Reset:
		cfg.ActiveStep = 0
	default:
		panic(fmt.Sprintf("stepper: unhandled intent %T", in))
	}
	return cfg
}
