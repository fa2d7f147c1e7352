package stepper

// FillMode is the effective fill behaviour handed to the renderer.
type FillMode int

const (
	FillNone FillMode = iota
	FillStretch
	FillAccordion
)

// String returns "accordion", "true" or "false", mirroring the renderer's
// fill property.
func (f FillMode) String() string {
	switch f {
	case FillAccordion:
		return "accordion"
	case FillStretch:
		return "true"
	default:
		return "false"
	}
}

// ResolveFill collapses the accordion and fill options into one mode.
func ResolveFill(cfg Config) FillMode {
	switch {
	case cfg.Accordion:
		return FillAccordion
	case cfg.Fill:
		return FillStretch
	default:
		return FillNone
	}
}

var stepLabels = [StepCount]string{"Step one", "Step two", "Step three"}

var contentParagraphs = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo.",
}

// StepContent is the expandable body of a step.
type StepContent struct {
	Paragraphs []string
	Actions    []Action
}

// StepView is everything the renderer needs for one step.
type StepView struct {
	Index     int
	Label     string
	LabelInfo string
	Icon      Icon
	Errored   bool
	Active    bool
	Completed bool
	// Content is nil when body content is switched off.
	Content *StepContent
}

// View is the resolved, render-ready form of a Config.
type View struct {
	Orientation      Orientation
	AlternativeLabel bool
	Large            bool
	Fill             FillMode
	IconSet          string
	Icons            [StepCount]Icon
	ActiveStep       int
	Steps            [StepCount]StepView
	Controls         Controls
}

// Resolve derives the render-ready view from cfg.
func Resolve(cfg Config) View {
	icons := cfg.IconSet.Icons()
	view := View{
		Orientation:      cfg.Orientation,
		AlternativeLabel: cfg.AlternativeLabel,
		Large:            cfg.Large,
		Fill:             ResolveFill(cfg),
		IconSet:          cfg.IconSet.Name(),
		Icons:            icons,
		ActiveStep:       cfg.ActiveStep,
		Controls:         ResolveControls(cfg),
	}

	for i := range view.Steps {
		step := StepView{
			Index:     i,
			Label:     stepLabels[i],
			Icon:      icons[i],
			Active:    i == cfg.ActiveStep,
			Completed: i < cfg.ActiveStep,
		}
		if i == 1 {
			step.LabelInfo = "Optional"
			step.Errored = cfg.ErroredStepTwo
		}
		if cfg.HasContent {
			step.Content = &StepContent{
				Paragraphs: append([]string(nil), contentParagraphs...),
				Actions:    StepActions(i),
			}
		}
		view.Steps[i] = step
	}

	return view
}
