package stepper

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

// Change-event field names.
const (
	FieldVertical         = "vertical"
	FieldAlternativeLabel = "alternativeLabel"
	FieldLarge            = "large"
	FieldAccordion        = "accordion"
	FieldFill             = "fill"
	FieldIconSet          = "iconSet"
	FieldHasContent       = "hasContent"
	FieldErroredStepTwo   = "erroredStepTwo"
	FieldNext             = "next"
	FieldPrevious         = "previous"
	FieldReset            = "reset"
)

// Intent is a single discrete change. The interface is sealed; Reduce knows
// every implementation.
type Intent interface {
	// Field names the configuration field the intent changes.
	Field() string
	intent()
}

type (
	SetVertical         struct{ Value bool }
	SetAlternativeLabel struct{ Value bool }
	SetLarge            struct{ Value bool }
	SetAccordion        struct{ Value bool }
	SetFill             struct{ Value bool }
	SetIconSet          struct{ Set IconSet }
	SetHasContent       struct{ Value bool }
	SetErrored          struct{ Value bool }
	Next                struct{}
	Previous            struct{}
	Reset               struct{}
)

func (SetVertical) Field() string         { return FieldVertical }
func (SetAlternativeLabel) Field() string { return FieldAlternativeLabel }
func (SetLarge) Field() string            { return FieldLarge }
func (SetAccordion) Field() string        { return FieldAccordion }
func (SetFill) Field() string             { return FieldFill }
func (SetIconSet) Field() string          { return FieldIconSet }
func (SetHasContent) Field() string       { return FieldHasContent }
func (SetErrored) Field() string          { return FieldErroredStepTwo }
func (Next) Field() string                { return FieldNext }
func (Previous) Field() string            { return FieldPrevious }
func (Reset) Field() string               { return FieldReset }

func (SetVertical) intent()         {}
func (SetAlternativeLabel) intent() {}
func (SetLarge) intent()            {}
func (SetAccordion) intent()        {}
func (SetFill) intent()             {}
func (SetIconSet) intent()          {}
func (SetHasContent) intent()       {}
func (SetErrored) intent()          {}
func (Next) intent()                {}
func (Previous) intent()            {}
func (Reset) intent()               {}

// toggle is implemented by the boolean intents.
type toggle interface {
	Intent
	enabled() bool
}

func (i SetVertical) enabled() bool         { return i.Value }
func (i SetAlternativeLabel) enabled() bool { return i.Value }
func (i SetLarge) enabled() bool            { return i.Value }
func (i SetAccordion) enabled() bool        { return i.Value }
func (i SetFill) enabled() bool             { return i.Value }
func (i SetHasContent) enabled() bool       { return i.Value }
func (i SetErrored) enabled() bool          { return i.Value }

// Describe formats an intent as a change event, e.g. "hasContent=true",
// "iconSet=alphabetical" or "next".
func Describe(in Intent) string {
	switch in := in.(type) {
	case toggle:
		return fmt.Sprintf("%s=%t", in.Field(), in.enabled())
	case SetIconSet:
		return fmt.Sprintf("%s=%s", in.Field(), in.Set.Name())
	default:
		return in.Field()
	}
}

// Fields lists every accepted change-event field name.
func Fields() []string {
	return []string{
		FieldVertical, FieldAlternativeLabel, FieldLarge, FieldAccordion, FieldFill,
		FieldIconSet, FieldHasContent, FieldErroredStepTwo,
		FieldNext, FieldPrevious, FieldReset,
	}
}

// ParseIntent converts a change event from the edge into an Intent. Navigation
// fields take no value. "orientation" is accepted as an alias for vertical with
// the values horizontal and vertical.
func ParseIntent(field, value string) (Intent, error) {
	value = strings.TrimSpace(value)

	switch field {
	case FieldNext, FieldPrevious, FieldReset:
		if value != "" {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("navigation event takes no value, got %q", value), nil)
		}
		switch field {
		case FieldNext:
			return Next{}, nil
		case FieldPrevious:
			return Previous{}, nil
		default:
			return Reset{}, nil
		}
	case FieldIconSet:
		set, err := ParseIconSet(value)
		if err != nil {
			return nil, err
		}
		return SetIconSet{Set: set}, nil
	case "orientation":
		switch strings.ToLower(value) {
		case "horizontal":
			return SetVertical{Value: false}, nil
		case "vertical":
			return SetVertical{Value: true}, nil
		default:
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("want horizontal or vertical, got %q", value), nil)
		}
	}

	build, ok := boolIntents[field]
	if !ok {
		return nil, apperrors.NewValidationError(field, "unknown field", nil)
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, fmt.Sprintf("expected a boolean, got %q", value), err)
	}
	return build(b), nil
}

var boolIntents = map[string]func(bool) Intent{
	FieldVertical:         func(v bool) Intent { return SetVertical{Value: v} },
	FieldAlternativeLabel: func(v bool) Intent { return SetAlternativeLabel{Value: v} },
	FieldLarge:            func(v bool) Intent { return SetLarge{Value: v} },
	FieldAccordion:        func(v bool) Intent { return SetAccordion{Value: v} },
	FieldFill:             func(v bool) Intent { return SetFill{Value: v} },
	FieldHasContent:       func(v bool) Intent { return SetHasContent{Value: v} },
	FieldErroredStepTwo:   func(v bool) Intent { return SetErrored{Value: v} },
}
