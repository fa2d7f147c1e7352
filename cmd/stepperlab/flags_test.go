package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	intents, err := parseAssignments([]string{"hasContent=true", "next", "iconSet=alphabetical", "orientation=horizontal"})
	require.NoError(t, err)
	require.Equal(t, []stepper.Intent{
		stepper.SetHasContent{Value: true},
		stepper.Next{},
		stepper.SetIconSet{Set: stepper.Alphabetical{}},
		stepper.SetVertical{Value: false},
	}, intents)

	_, err = parseAssignments([]string{"large=maybe"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--set large=maybe")

	_, err = parseAssignments([]string{"colour=red"})
	require.Error(t, err)
}

func TestValidateScriptPath(t *testing.T) {
	t.Parallel()

	t.Run("returns error when path is empty", func(t *testing.T) {
		t.Parallel()
		require.ErrorContains(t, validateScriptPath(" "), "required")
	})

	t.Run("returns error when file is missing", func(t *testing.T) {
		t.Parallel()
		require.ErrorContains(t, validateScriptPath("/path/does/not/exist.yaml"), "does not exist")
	})

	t.Run("returns error for a directory", func(t *testing.T) {
		t.Parallel()
		require.ErrorContains(t, validateScriptPath(t.TempDir()), "is a directory")
	})
}

func TestValidateOutputFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "yaml", "json"} {
		require.NoError(t, validateOutputFormat(format))
	}
	require.Error(t, validateOutputFormat("xml"))
}
