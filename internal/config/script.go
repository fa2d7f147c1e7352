package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Script is a recorded sequence of change events replayed against a fresh
// configurator.
type Script struct {
	Version     string  `yaml:"version" validate:"required,oneof=1"`
	Name        string  `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Description string  `yaml:"description,omitempty"`
	Events      []Event `yaml:"events" validate:"required,min=1,dive"`
}

// Event is one discrete change: the field that changed and its new value.
type Event struct {
	Field string     `yaml:"field" validate:"required,event_field"`
	Value EventValue `yaml:"value,omitempty"`
	Line  int        `yaml:"-"`
}

// EventValue accepts any YAML scalar and keeps its literal text, so both
// `value: true` and `value: "true"` decode to "true".
type EventValue string

// UnmarshalYAML keeps the scalar's source text.
func (v *EventValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: event value must be a scalar", node.Line)
	}
	*v = EventValue(node.Value)
	return nil
}

// UnmarshalYAML decodes an event mapping, rejecting keys other than field and
// value, and records the event's line for error reporting.
func (e *Event) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: event must be a mapping", node.Line)
	}

	event := Event{Line: node.Line}
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("line %d: event key %q already set", key.Line, key.Value)
		}
		seen[key.Value] = true

		switch key.Value {
		case "field":
			if err := value.Decode(&event.Field); err != nil {
				return err
			}
		case "value":
			if err := value.Decode(&event.Value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d: unknown event key %q, want field or value", key.Line, key.Value)
		}
	}
	*e = event
	return nil
}

// ParseScript loads a script file from disk and validates it.
func ParseScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return DecodeScript(bytes.NewReader(data), path)
}

// DecodeScript reads a script from r. name labels parse errors.
func DecodeScript(r io.Reader, name string) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if err == io.EOF {
			return nil, apperrors.NewValidationError("", "script is empty", nil)
		}
		return nil, apperrors.NewParseError(name, extractLine(err), err)
	}

	if err := convertValidationError(validatorInstance().Struct(script)); err != nil {
		return nil, err
	}
	return &script, nil
}

// Intents converts every event into a stepper intent. The first event that
// cannot be converted is reported with its index.
func (s *Script) Intents() ([]stepper.Intent, error) {
	intents := make([]stepper.Intent, 0, len(s.Events))
	for i, event := range s.Events {
		in, err := stepper.ParseIntent(event.Field, string(event.Value))
		if err != nil {
			return nil, apperrors.NewEventError(i, event.Field, err)
		}
		intents = append(intents, in)
	}
	return intents, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
