package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

// Summary renders the resolved properties handed to the stepper renderer.
type Summary struct {
	view stepper.View
}

// NewSummary creates a new Summary component.
func NewSummary(view stepper.View) Summary {
	return Summary{view: view}
}

// Lines returns one "name: value" pair per resolved property.
func (s Summary) Lines() []string {
	v := s.view
	content := "absent"
	if v.Steps[0].Content != nil {
		content = "present"
	}
	return []string{
		fmt.Sprintf("orientation: %s", v.Orientation),
		fmt.Sprintf("alternativeLabel: %t", v.AlternativeLabel),
		fmt.Sprintf("large: %t", v.Large),
		fmt.Sprintf("fill: %s", v.Fill),
		fmt.Sprintf("icons: %s", v.IconSet),
		fmt.Sprintf("activeStep: %d", v.ActiveStep),
		fmt.Sprintf("content: %s", content),
		fmt.Sprintf("errored: %s", erroredSteps(v)),
	}
}

// View renders the summary.
func (s Summary) View() string {
	return strings.Join(s.Lines(), "\n")
}

func erroredSteps(v stepper.View) string {
	var labels []string
	for _, step := range v.Steps {
		if step.Errored {
			labels = append(labels, step.Label)
		}
	}
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}
