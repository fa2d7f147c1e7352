package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("walkthrough.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "walkthrough.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: walkthrough.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("events[1].value", "expected a boolean", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "events[1].value", validationErr.Field)
	require.Contains(t, err.Error(), "expected a boolean")

	bare := NewValidationError("", "script is empty", nil)
	require.Equal(t, "validation error: script is empty", bare.Error())
}

func TestEventErrorIsOneBased(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unknown field")
	err := NewEventError(2, "orientation", underlying)

	var eventErr *EventError
	require.ErrorAs(t, err, &eventErr)
	require.Equal(t, 2, eventErr.Index)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "event 3 (orientation): unknown field", err.Error())
}

func TestInvariantErrorNamesRule(t *testing.T) {
	t.Parallel()

	err := NewInvariantError("vertical-label", "vertical and alternative label both set")

	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
	require.Equal(t, "vertical-label", invErr.Rule)
	require.Contains(t, err.Error(), "invariant vertical-label violated")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var eventErr *EventError
	var invErr *InvariantError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, eventErr.Error())
	require.Nil(t, eventErr.Unwrap())
	require.Empty(t, invErr.Error())
}
