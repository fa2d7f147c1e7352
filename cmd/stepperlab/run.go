package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui"
)

// programRunner starts the interactive program. Tests replace it.
var programRunner = func(model tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

func newRunCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive configurator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigurator(cmd, root)
		},
	}
}

func runConfigurator(cmd *cobra.Command, root *rootFlags) error {
	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	// The alt screen owns stdout, so logs only go to a file there.
	var fallback io.Writer = cmd.ErrOrStderr()
	if interactive {
		fallback = nil
	}
	app, err := loadAppContext(cmd, root, fallback)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	configurator := stepper.NewConfigurator(stepper.WithLogger(app.Logger))
	if !interactive {
		app.Logger.Debug("stdout is not a terminal, rendering statically")
		fmt.Fprintln(out, tui.RenderStatic(configurator.Snapshot(), app.Appearance()))
		return nil
	}

	model := tui.NewModel(tui.Options{
		Appearance:   app.Appearance(),
		Configurator: configurator,
		Logger:       app.Logger,
	})

	var opts []tea.ProgramOption
	if app.Settings.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	app.Logger.Info("configurator started", "alt_screen", app.Settings.UI.AltScreen)
	if err := programRunner(model, opts...); err != nil {
		return fmt.Errorf("run configurator: %w", err)
	}
	app.Logger.Info("configurator closed", "config", configurator.Snapshot().Fields())
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
