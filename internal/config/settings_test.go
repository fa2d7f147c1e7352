package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")

	s, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadReadsSettingsFile(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
log:
  level: DEBUG
  file: /tmp/stepperlab.log
  human: true
ui:
  ascii: true
  accent_color: "#ff8800"
  width: 100
`)

	s, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "/tmp/stepperlab.log", s.Log.File)
	assert.True(t, s.Log.Human)
	assert.True(t, s.UI.ASCII)
	assert.True(t, s.UI.AltScreen, "unset keys keep defaults")
	assert.Equal(t, "#ff8800", s.UI.AccentColor)
	assert.Equal(t, 100, s.UI.Width)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "ui:\n  width: 90\n")
	t.Setenv(ConfigEnvVar, path)
	t.Setenv("STEPPERLAB_UI_WIDTH", "120")
	t.Setenv("STEPPERLAB_LOG_LEVEL", "warn")

	s, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 120, s.UI.Width)
	assert.Equal(t, "warn", s.Log.Level)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read settings")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad colour", "ui:\n  accent_color: purple\n", "ui.accent_color"},
		{"colour out of range", "ui:\n  accent_color: 300\n", "ui.accent_color"},
		{"narrow", "ui:\n  width: 10\n", "ui.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "config.yaml", tt.content)

			_, err := Load(LoadOptions{Dir: dir})
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestConfigDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "stepperlab"), dir)
}
