package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/render"
)

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{Highlight: render.NoHighlight}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a board or recursion-tree visualization",
		Long: `Render a board or recursion-tree visualization.

The board view (-t board) draws the three pegs and disks as an SVG, after
applying the first --step moves of the optimal solution. The tree view
(-t tree) draws the solver's recursion tree via Graphviz; --highlight marks
the call active at a trace timestamp.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd, opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Puzzle flags
	cmd.Flags().IntVarP(&opts.Disks, "disks", "n", pipeline.DefaultDisks, "number of disks")
	cmd.Flags().StringVar(&opts.Source, "from", "A", "source peg (A, B, or C)")
	cmd.Flags().StringVar(&opts.Dest, "to", "C", "destination peg")
	cmd.Flags().StringVar(&opts.Aux, "via", "B", "auxiliary peg")

	// Render flags
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", pipeline.DefaultVizType, "visualization type: board (default), tree")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().Float64Var(&opts.Width, "width", render.DefaultBoardWidth, "frame width (board)")
	cmd.Flags().Float64Var(&opts.Height, "height", render.DefaultBoardHeight, "frame height (board)")
	cmd.Flags().IntVar(&opts.Step, "step", 0, "solution moves applied before rendering (board)")
	cmd.Flags().IntVar(&opts.Highlight, "highlight", render.NoHighlight, "trace timestamp to highlight (tree)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runRender executes the render pipeline and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(cmd, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	ctx := cmd.Context()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.VizType))
	spinner.Start()

	artifacts, cacheHit, err := runner.Render(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// A single format without -o streams to stdout; keep it clean of
	// status output.
	toStdout := output == "" && len(opts.Formats) == 1

	if !toStdout {
		printSuccess("Rendered %s (%d disks)", opts.VizType, opts.Disks)
	}
	for _, format := range opts.Formats {
		path := artifactPath(output, opts, format)
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(artifacts[format]); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		if path != "" {
			printFile(path)
		}
	}
	if !toStdout {
		printStats(0, 0, cacheHit)
	}
	return nil
}

// validFormats is the set of extensions artifactPath may strip from -o.
var validFormats = map[string]bool{
	render.FormatSVG: true,
	render.FormatPNG: true,
	render.FormatDOT: true,
}

// artifactPath derives the output file path for one format.
// An empty output with a single format writes to stdout. With multiple
// formats, paths are derived from the base path (default "hanoi_<type>").
func artifactPath(output string, opts pipeline.Options, format string) string {
	if output == "" {
		if len(opts.Formats) == 1 {
			return ""
		}
		return fmt.Sprintf("hanoi_%s.%s", opts.VizType, format)
	}
	if len(opts.Formats) == 1 {
		return output
	}
	base := output
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(output, ext)
	}
	return base + "." + format
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
