package stepper

// Action is a within-step button shown in a step's body content.
type Action int

const (
	ActionPrevious Action = iota
	ActionNext
	ActionComplete
)

// String returns the button text.
func (a Action) String() string {
	switch a {
	case ActionPrevious:
		return "Previous"
	case ActionNext:
		return "Next"
	case ActionComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Intent returns the cursor move the action triggers. Complete advances like
// Next so the cursor can move past the last step.
func (a Action) Intent() Intent {
	if a == ActionPrevious {
		return Previous{}
	}
	return Next{}
}

// StepActions returns the buttons rendered inside a step's body content.
func StepActions(step int) []Action {
	var actions []Action
	if step > 0 {
		actions = append(actions, ActionPrevious)
	}
	if step < LastStep {
		actions = append(actions, ActionNext)
	}
	if step == LastStep {
		actions = append(actions, ActionComplete)
	}
	return actions
}

// Controls reports which navigation affordances the options panel shows and
// enables. Nothing here clamps the cursor.
type Controls struct {
	// ShowNavigation is true when the outer Previous/Next bar is rendered.
	ShowNavigation  bool
	PreviousEnabled bool
	NextEnabled     bool
	// ShowReset is true once the cursor has moved past the last step while
	// body content is shown.
	ShowReset bool
	// FillEnabled is false while accordion mode supersedes fill.
	FillEnabled bool
}

// ResolveControls computes control visibility and enablement for cfg.
func ResolveControls(cfg Config) Controls {
	return Controls{
		ShowNavigation:  !cfg.HasContent,
		PreviousEnabled: cfg.ActiveStep >= 1,
		NextEnabled:     cfg.ActiveStep <= LastStep,
		ShowReset:       cfg.HasContent && cfg.ActiveStep > LastStep,
		FillEnabled:     !cfg.Accordion,
	}
}

// ActiveActions returns the within-step buttons for the active step, or nil
// when body content is hidden or the cursor is outside the step range.
func ActiveActions(cfg Config) []Action {
	if !cfg.HasContent || cfg.ActiveStep < 0 || cfg.ActiveStep > LastStep {
		return nil
	}
	return StepActions(cfg.ActiveStep)
}
