package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/trace"
)

// traceCommand creates the trace command for inspecting the recursion log.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		noCache bool
		asJSON  bool
		at      int
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect the solver's recursion event log",
		Long: `Inspect the solver's recursion event log.

Each recursive call emits an enter event, each disk transfer a move event,
and each return an exit event. Events carry consecutive timestamps, so the
full log for n disks holds 3*(2^n - 1) events.

Use --at to query which recursive call is active at a given timestamp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			opts.Logger = c.Logger
			events, cacheHit, err := runner.Trace(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if at >= 0 {
				return printActiveNode(events, at)
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(events)
			}

			printSuccess("Traced %d disks", opts.Disks)
			printStats(0, len(events), cacheHit)
			printNewline()
			for _, e := range events {
				printEvent(e)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Disks, "disks", "n", pipeline.DefaultDisks, "number of disks")
	cmd.Flags().StringVar(&opts.Source, "from", "A", "source peg (A, B, or C)")
	cmd.Flags().StringVar(&opts.Dest, "to", "C", "destination peg")
	cmd.Flags().StringVar(&opts.Aux, "via", "B", "auxiliary peg")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit events as JSON")
	cmd.Flags().IntVar(&at, "at", -1, "print the call active at this timestamp and exit")

	return cmd
}

// printEvent prints one event line.
func printEvent(e trace.Event) {
	label := string(e.Type)
	switch e.Type {
	case trace.EventEnter:
		label = StyleHighlight.Render("enter")
	case trace.EventMove:
		label = StyleSuccess.Render("move ")
	case trace.EventExit:
		label = StyleDim.Render("exit ")
	}

	line := fmt.Sprintf("  t=%-4d %s %s", e.T, label, e.NodeID)
	if e.Move != nil {
		line += "  " + StyleValue.Render(e.Move.String())
	}
	fmt.Println(line)
}

// printActiveNode reports the call active at timestamp t.
func printActiveNode(events []trace.Event, t int) error {
	id, ok := trace.ActiveNodeAt(events, t)
	if !ok {
		printInfo("No call active at t=%d", t)
		return nil
	}
	printKeyValue("t", fmt.Sprintf("%d", t))
	printKeyValue("active", id)
	return nil
}
