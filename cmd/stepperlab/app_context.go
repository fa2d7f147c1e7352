package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stepperlab/internal/config"
	"github.com/alexisbeaulieu97/stepperlab/internal/logger"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui"
)

// AppContext bundles the settings and services created at startup.
type AppContext struct {
	Settings config.Settings
	Logger   *logger.Logger

	closeLog func() error
}

// Appearance returns the rendering preferences for the TUI and static output.
func (a *AppContext) Appearance() tui.Appearance {
	return tui.Appearance{
		ASCII:       a.Settings.UI.ASCII,
		AccentColor: a.Settings.UI.AccentColor,
		Width:       a.Settings.UI.Width,
	}
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

// loadAppContext resolves settings, applies command-line overrides and builds
// the logger. Logs go to the log file when one is configured, otherwise to
// fallback. A nil fallback discards logs.
func loadAppContext(cmd *cobra.Command, flags *rootFlags, fallback io.Writer) (*AppContext, error) {
	settings, err := config.Load(config.LoadOptions{Path: flags.configPath})
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		settings.Log.Level = flags.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		settings.Log.File = flags.logFile
	}
	if cmd.Flags().Changed("ascii") {
		settings.UI.ASCII = flags.ascii
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	app := &AppContext{Settings: settings}

	writer := fallback
	if settings.Log.File != "" {
		file, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		app.closeLog = file.Close
	}

	if writer == nil {
		app.Logger = logger.Nop()
		return app, nil
	}

	log, err := logger.New(logger.Options{
		Level:         settings.Log.Level,
		HumanReadable: settings.Log.Human,
		Writer:        writer,
		Component:     cmd.Name(),
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Logger = log
	return app, nil
}
