package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	ascii      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stepperlab",
		Short:         "stepperlab is an interactive configurator for a three-step stepper widget",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the configurator
			if len(args) == 0 {
				return runConfigurator(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a settings file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVar(&flags.ascii, "ascii", false, "Use ASCII glyphs only")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
