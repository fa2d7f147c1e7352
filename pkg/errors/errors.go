package errors

import (
	"fmt"
)

// ParseError represents a script decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a rejected value at the edge: a settings key, a
// script field or a change event that names an unknown field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EventError pins a failure to one change event of a replay script.
type EventError struct {
	Index int
	Field string
	Err   error
}

// NewEventError constructs an EventError for the zero-based event index.
func NewEventError(index int, field string, err error) error {
	return &EventError{Index: index, Field: field, Err: err}
}

func (e *EventError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("event %d (%s): %v", e.Index+1, e.Field, e.Err)
	}
	return fmt.Sprintf("event %d: %v", e.Index+1, e.Err)
}

// Unwrap exposes the root error.
func (e *EventError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvariantError reports a configuration that breaks one of the stepper's
// cross-field rules. Reaching one is a bug in the reconciliation rules.
type InvariantError struct {
	Rule    string
	Message string
}

// NewInvariantError constructs an InvariantError for the named rule.
func NewInvariantError(rule, message string) error {
	return &InvariantError{Rule: rule, Message: message}
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invariant %s violated: %s", e.Rule, e.Message)
}
