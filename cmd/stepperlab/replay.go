package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stepperlab/internal/config"
	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui/components"
	"github.com/alexisbeaulieu97/stepperlab/pkg/diff"
)

type replayOptions struct {
	ScriptPath string
	Output     string
	Trace      bool
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	opts := replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a YAML event script through the configurator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScriptPath = args[0]
			if err := validateScriptPath(opts.ScriptPath); err != nil {
				return err
			}
			if err := validateOutputFormat(opts.Output); err != nil {
				return err
			}
			return runReplay(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text, yaml or json")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Include the state after every event")

	return cmd
}

func runReplay(cmd *cobra.Command, root *rootFlags, opts replayOptions) error {
	script, err := config.ParseScript(opts.ScriptPath)
	if err != nil {
		return err
	}
	intents, err := script.Intents()
	if err != nil {
		return err
	}

	app, err := loadAppContext(cmd, root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	log := app.Logger.With("script", opts.ScriptPath)
	configurator := stepper.NewConfigurator(stepper.WithLogger(log))

	var trace []traceEntry
	current := 0
	if opts.Trace {
		previous := components.NewSummary(configurator.View()).Lines()
		unsubscribe := configurator.Subscribe(func(_ stepper.Config, view stepper.View) {
			entry := newTraceEntry(current, intents[current], view, previous)
			previous = entry.Summary
			trace = append(trace, entry)
		})
		defer unsubscribe()
	}
	for i, in := range intents {
		current = i
		configurator.Dispatch(in)
	}
	log.Info("script replayed", "events", len(intents))

	cfg := configurator.Snapshot()
	out := cmd.OutOrStdout()
	if opts.Output != outputText {
		return writeReport(out, opts.Output, newReport(script.Name, cfg, trace))
	}

	for _, entry := range trace {
		fmt.Fprintf(out, "%d %s\n", entry.Index, entry.Event)
		if len(entry.Changed) == 0 {
			fmt.Fprintln(out, "  (no change)")
			continue
		}
		for _, line := range entry.Changed {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	if len(trace) > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, tui.RenderStatic(cfg, app.Appearance()))
	return nil
}

// traceEntry is the state after one replayed event and the summary lines the
// event changed.
type traceEntry struct {
	Index   int      `json:"index" yaml:"index"`
	Event   string   `json:"event" yaml:"event"`
	Summary []string `json:"summary" yaml:"summary"`
	Changed []string `json:"changed,omitempty" yaml:"changed,omitempty"`
}

func newTraceEntry(index int, in stepper.Intent, view stepper.View, previous []string) traceEntry {
	summary := components.NewSummary(view).Lines()
	return traceEntry{
		Index:   index + 1,
		Event:   stepper.Describe(in),
		Summary: summary,
		Changed: diff.Strings(diff.Lines(previous, summary)),
	}
}
