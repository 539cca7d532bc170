package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoitower/pkg/pipeline"
)

// solveCommand creates the solve command for computing move sequences.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		noCache  bool
		asJSON   bool
		maxPrint int
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the optimal move sequence",
		Long: `Compute the optimal move sequence for a Tower of Hanoi puzzle.

The solver moves all disks from the source peg to the destination peg in
2^n - 1 moves. Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			opts.Logger = c.Logger
			p := newProgress(c.Logger)
			moves, err := runner.Solve(cmd.Context(), opts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Solved %d disks in %d moves", opts.Disks, len(moves)))

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(moves)
			}

			printSuccess("%d disks, %s to %s", opts.Disks,
				StyleHighlight.Render(opts.Source), StyleHighlight.Render(opts.Dest))
			shown := len(moves)
			if maxPrint > 0 && shown > maxPrint {
				shown = maxPrint
			}
			for i, mv := range moves[:shown] {
				fmt.Printf("  %3d. %s\n", i+1, StyleValue.Render(mv.String()))
			}
			if shown < len(moves) {
				printDetail("... %d more moves", len(moves)-shown)
			}
			printNewline()
			printNextStep("Visualize", fmt.Sprintf("hanoitower render -n %d -t tree", opts.Disks))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Disks, "disks", "n", pipeline.DefaultDisks, "number of disks")
	cmd.Flags().StringVar(&opts.Source, "from", "A", "source peg (A, B, or C)")
	cmd.Flags().StringVar(&opts.Dest, "to", "C", "destination peg")
	cmd.Flags().StringVar(&opts.Aux, "via", "B", "auxiliary peg")
	cmd.Flags().BoolVar(&opts.Iterative, "iterative", false, "use the iterative solver")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit moves as JSON")
	cmd.Flags().IntVar(&maxPrint, "max-print", 32, "maximum moves to print (0 for all)")

	return cmd
}
