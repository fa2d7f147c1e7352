package stepper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		field string
		value string
		want  Intent
	}{
		{FieldVertical, "true", SetVertical{Value: true}},
		{FieldAlternativeLabel, "false", SetAlternativeLabel{Value: false}},
		{FieldLarge, "1", SetLarge{Value: true}},
		{FieldAccordion, "t", SetAccordion{Value: true}},
		{FieldFill, "FALSE", SetFill{Value: false}},
		{FieldHasContent, "true", SetHasContent{Value: true}},
		{FieldErroredStepTwo, "true", SetErrored{Value: true}},
		{FieldIconSet, "icons", SetIconSet{Set: Symbolic{}}},
		{FieldNext, "", Next{}},
		{FieldPrevious, " ", Previous{}},
		{FieldReset, "", Reset{}},
		{"orientation", "vertical", SetVertical{Value: true}},
		{"orientation", "Horizontal", SetVertical{Value: false}},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			got, err := ParseIntent(tt.field, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntentRejectsBadInput(t *testing.T) {
	tests := []struct {
		field string
		value string
		msg   string
	}{
		{"colour", "red", "unknown field"},
		{FieldLarge, "maybe", "expected a boolean"},
		{FieldNext, "2", "takes no value"},
		{FieldIconSet, "emoji", "unknown icon set"},
		{"orientation", "diagonal", "want horizontal or vertical"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := ParseIntent(tt.field, tt.value)
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestIntentFieldsRoundTrip(t *testing.T) {
	for _, in := range allIntents() {
		assert.Contains(t, Fields(), in.Field())
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   Intent
		want string
	}{
		{SetVertical{Value: true}, "vertical=true"},
		{SetAlternativeLabel{Value: false}, "alternativeLabel=false"},
		{SetLarge{Value: true}, "large=true"},
		{SetAccordion{Value: true}, "accordion=true"},
		{SetFill{Value: false}, "fill=false"},
		{SetHasContent{Value: true}, "hasContent=true"},
		{SetErrored{Value: true}, "erroredStepTwo=true"},
		{SetIconSet{Set: Alphabetical{}}, "iconSet=alphabetical"},
		{Next{}, "next"},
		{Previous{}, "previous"},
		{Reset{}, "reset"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.in))
	}
}

func TestDescribeRoundTripsThroughParseIntent(t *testing.T) {
	for _, in := range []Intent{SetHasContent{Value: true}, SetIconSet{Set: Dotted{}}, Reset{}} {
		field, value, _ := strings.Cut(Describe(in), "=")
		got, err := ParseIntent(field, value)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}
