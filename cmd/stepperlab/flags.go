package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

func validateOutputFormat(format string) error {
	switch format {
	case outputText, outputYAML, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
	}
}

func validateScriptPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("script file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("script file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("script path %s is a directory", abs)
	}

	return nil
}

// parseAssignments turns "field=value" (or a bare navigation "field") flags
// into intents, in order.
func parseAssignments(assignments []string) ([]stepper.Intent, error) {
	intents := make([]stepper.Intent, 0, len(assignments))
	for _, raw := range assignments {
		field, value, _ := strings.Cut(raw, "=")
		in, err := stepper.ParseIntent(strings.TrimSpace(field), value)
		if err != nil {
			return nil, fmt.Errorf("--set %s: %w", raw, err)
		}
		intents = append(intents, in)
	}
	return intents, nil
}
