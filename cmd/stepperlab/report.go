package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

type configReport struct {
	Orientation      string `json:"orientation" yaml:"orientation"`
	AlternativeLabel bool   `json:"alternativeLabel" yaml:"alternativeLabel"`
	Large            bool   `json:"large" yaml:"large"`
	Accordion        bool   `json:"accordion" yaml:"accordion"`
	Fill             bool   `json:"fill" yaml:"fill"`
	IconSet          string `json:"iconSet" yaml:"iconSet"`
	HasContent       bool   `json:"hasContent" yaml:"hasContent"`
	ErroredStepTwo   bool   `json:"erroredStepTwo" yaml:"erroredStepTwo"`
	ActiveStep       int    `json:"activeStep" yaml:"activeStep"`
}

type stepReport struct {
	Label     string `json:"label" yaml:"label"`
	LabelInfo string `json:"labelInfo,omitempty" yaml:"labelInfo,omitempty"`
	Icon      string `json:"icon" yaml:"icon"`
	Active    bool   `json:"active" yaml:"active"`
	Completed bool   `json:"completed" yaml:"completed"`
	Errored   bool   `json:"errored" yaml:"errored"`
	Content   bool   `json:"content" yaml:"content"`
}

type controlsReport struct {
	ShowNavigation  bool `json:"showNavigation" yaml:"showNavigation"`
	PreviousEnabled bool `json:"previousEnabled" yaml:"previousEnabled"`
	NextEnabled     bool `json:"nextEnabled" yaml:"nextEnabled"`
	ShowReset       bool `json:"showReset" yaml:"showReset"`
	FillEnabled     bool `json:"fillEnabled" yaml:"fillEnabled"`
}

type resolvedReport struct {
	Fill     string         `json:"fill" yaml:"fill"`
	Steps    []stepReport   `json:"steps" yaml:"steps"`
	Controls controlsReport `json:"controls" yaml:"controls"`
}

// stateReport is the machine-readable form of a configuration and its
// resolved view.
type stateReport struct {
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Config   configReport   `json:"config" yaml:"config"`
	Resolved resolvedReport `json:"resolved" yaml:"resolved"`
	Trace    []traceEntry   `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func newReport(name string, cfg stepper.Config, trace []traceEntry) stateReport {
	view := stepper.Resolve(cfg)

	steps := make([]stepReport, 0, len(view.Steps))
	for _, step := range view.Steps {
		steps = append(steps, stepReport{
			Label:     step.Label,
			LabelInfo: step.LabelInfo,
			Icon:      step.Icon.Text,
			Active:    step.Active,
			Completed: step.Completed,
			Errored:   step.Errored,
			Content:   step.Content != nil,
		})
	}

	return stateReport{
		Name: name,
		Config: configReport{
			Orientation:      cfg.Orientation.String(),
			AlternativeLabel: cfg.AlternativeLabel,
			Large:            cfg.Large,
			Accordion:        cfg.Accordion,
			Fill:             cfg.Fill,
			IconSet:          cfg.IconSet.Name(),
			HasContent:       cfg.HasContent,
			ErroredStepTwo:   cfg.ErroredStepTwo,
			ActiveStep:       cfg.ActiveStep,
		},
		Resolved: resolvedReport{
			Fill:  view.Fill.String(),
			Steps: steps,
			Controls: controlsReport{
				ShowNavigation:  view.Controls.ShowNavigation,
				PreviousEnabled: view.Controls.PreviousEnabled,
				NextEnabled:     view.Controls.NextEnabled,
				ShowReset:       view.Controls.ShowReset,
				FillEnabled:     view.Controls.FillEnabled,
			},
		},
		Trace: trace,
	}
}

func writeReport(w io.Writer, format string, report stateReport) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
