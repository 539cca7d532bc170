// Package pipeline provides the core solve → trace → render pipeline.
//
// This package implements the complete workflow shared by the CLI and the
// API server: run the solver, build the trace event log, and render visual
// artifacts, memoizing each stage in a cache. Centralizing the flow keeps
// behavior consistent across entry points.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Disks:   3,
//	    VizType: pipeline.VizTypeTree,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	moves, err := runner.Solve(ctx, opts)
//	events, err := runner.Trace(ctx, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/render"
	"github.com/matzehuels/hanoitower/pkg/trace"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultDisks is the default puzzle size.
	DefaultDisks = 3

	// MaxDisks bounds interactive requests. The move count doubles per
	// disk; beyond this the artifacts stop being useful and the solve
	// stops being instant.
	MaxDisks = 20

	// DefaultVizType is the default visualization type.
	DefaultVizType = render.VizTypeBoard

	// DefaultFormat is the default artifact format.
	DefaultFormat = render.FormatSVG
)

// Visualization and format constants, re-exported for convenience.
const (
	VizTypeBoard = render.VizTypeBoard
	VizTypeTree  = render.VizTypeTree

	FormatSVG = render.FormatSVG
	FormatPNG = render.FormatPNG
	FormatDOT = render.FormatDOT
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Puzzle parameters. Pegs take either encoding ("A" or "0").
	Disks  int    `json:"disks"`
	Source string `json:"source,omitempty"`
	Dest   string `json:"dest,omitempty"`
	Aux    string `json:"aux,omitempty"`

	// Iterative selects the stack-free solver. Output is identical; the
	// flag exists for comparing the two implementations.
	Iterative bool `json:"iterative,omitempty"`

	// Render options.
	VizType   string   `json:"viz_type,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Step      int      `json:"step,omitempty"`      // board: moves applied before rendering
	Highlight int      `json:"highlight,omitempty"` // tree: trace timestamp to highlight, render.NoHighlight for none

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Disks == 0 {
		o.Disks = DefaultDisks
	}
	if o.Disks < 0 {
		return errors.New(errors.ErrCodeInvalidDiskCount, "disk count must be positive, got %d", o.Disks)
	}
	if o.Disks > MaxDisks {
		return errors.New(errors.ErrCodeInvalidDiskCount, "disk count %d exceeds maximum %d", o.Disks, MaxDisks)
	}

	if o.Source == "" {
		o.Source = "A"
	}
	if o.Dest == "" {
		o.Dest = "C"
	}
	if o.Aux == "" {
		o.Aux = "B"
	}
	src, dst, aux, err := o.Pegs()
	if err != nil {
		return err
	}
	if err := hanoi.ValidateSolveArgs(o.Disks, src, dst, aux); err != nil {
		return err
	}

	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if err := render.ValidateVizType(o.VizType); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if err := render.ValidateFormat(f); err != nil {
			return err
		}
	}

	if o.Width == 0 {
		o.Width = render.DefaultBoardWidth
	}
	if o.Height == 0 {
		o.Height = render.DefaultBoardHeight
	}

	if o.Step < 0 || o.Step > hanoi.MoveCount(o.Disks) {
		return errors.New(errors.ErrCodeInvalidConfig, "step %d out of range for %d disks", o.Step, o.Disks)
	}
	if o.Highlight < render.NoHighlight {
		return errors.New(errors.ErrCodeInvalidConfig, "highlight timestamp %d out of range", o.Highlight)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Pegs parses the three peg identifiers.
func (o *Options) Pegs() (src, dst, aux hanoi.Peg, err error) {
	if src, err = hanoi.ParsePeg(o.Source); err != nil {
		return
	}
	if dst, err = hanoi.ParsePeg(o.Dest); err != nil {
		return
	}
	aux, err = hanoi.ParsePeg(o.Aux)
	return
}

// IsBoard returns true if this is a board visualization.
func (o *Options) IsBoard() bool {
	return o.VizType == "" || o.VizType == VizTypeBoard
}

// IsTree returns true if this is a recursion-tree visualization.
func (o *Options) IsTree() bool {
	return o.VizType == VizTypeTree
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Moves is the optimal move sequence.
	Moves []hanoi.Move

	// Events is the trace event log for the same parameters.
	Events []trace.Event

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	MoveCount  int
	EventCount int
	SolveTime  time.Duration
	TraceTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TraceHit  bool // Whether the trace log came from cache
	RenderHit bool // Whether all artifacts came from cache
}
