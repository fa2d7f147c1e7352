package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName = "stepperlab"

	// EnvPrefix prefixes every environment override, e.g. STEPPERLAB_LOG_LEVEL.
	EnvPrefix = "STEPPERLAB"
	// ConfigEnvVar points at an explicit settings file.
	ConfigEnvVar = "STEPPERLAB_CONFIG"
)

// Settings holds the ambient application preferences. They never seed the
// stepper configuration itself.
type Settings struct {
	Log LogSettings `mapstructure:"log"`
	UI  UISettings  `mapstructure:"ui"`
}

// LogSettings configures the structured logger.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error disabled"`
	// File receives log output. Empty discards logs while the TUI owns the terminal.
	File  string `mapstructure:"file"`
	Human bool   `mapstructure:"human"`
}

// UISettings configures the terminal front end.
type UISettings struct {
	ASCII       bool   `mapstructure:"ascii"`
	AltScreen   bool   `mapstructure:"alt_screen"`
	AccentColor string `mapstructure:"accent_color" validate:"required,ansi_color"`
	Width       int    `mapstructure:"width" validate:"min=40,max=240"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{Level: "info"},
		UI: UISettings{
			AltScreen:   true,
			AccentColor: "99",
			Width:       80,
		},
	}
}

// LoadOptions controls where settings are read from.
type LoadOptions struct {
	// Path is an explicit settings file; it must exist when set.
	Path string
	// Dir overrides the directory searched for config.yaml.
	Dir string
}

// Load resolves settings from defaults, the settings file and STEPPERLAB_*
// environment variables, in increasing precedence.
func Load(opts LoadOptions) (Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.human", defaults.Log.Human)
	v.SetDefault("ui.ascii", defaults.UI.ASCII)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)
	v.SetDefault("ui.accent_color", defaults.UI.AccentColor)
	v.SetDefault("ui.width", defaults.UI.Width)

	v.SetConfigType("yaml")

	path := opts.Path
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	} else {
		dir := opts.Dir
		if dir == "" {
			resolved, err := ConfigDir()
			if err != nil {
				return Settings{}, err
			}
			dir = resolved
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read settings: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings against their constraints.
func (s Settings) Validate() error {
	return convertValidationError(validatorInstance().Struct(s))
}

// ConfigDir returns the directory searched for config.yaml:
// $XDG_CONFIG_HOME/stepperlab, falling back to $HOME/.config/stepperlab.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}
