package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui"
)

type renderOptions struct {
	Assignments []string
	Output      string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Apply change events to the default configuration and print the result",
		Example: `  stepperlab render --set hasContent=true --set next
  stepperlab render --set orientation=vertical --set iconSet=icons --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(opts.Output); err != nil {
				return err
			}
			intents, err := parseAssignments(opts.Assignments)
			if err != nil {
				return err
			}

			app, err := loadAppContext(cmd, root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			configurator := stepper.NewConfigurator(stepper.WithLogger(app.Logger))
			for _, in := range intents {
				configurator.Dispatch(in)
			}

			cfg := configurator.Snapshot()
			if opts.Output == outputText {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatic(cfg, app.Appearance()))
				return nil
			}
			return writeReport(cmd.OutOrStdout(), opts.Output, newReport("", cfg, nil))
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Assignments, "set", "s", nil, "Change event as field=value (repeatable, applied in order)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text, yaml or json")

	return cmd
}
