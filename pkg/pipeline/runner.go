package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoitower/pkg/cache"
	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/render"
	"github.com/matzehuels/hanoitower/pkg/trace"
)

// Runner executes pipeline stages against a cache backend.
// The zero value is not usable; use NewRunner.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a Runner. A nil cache disables memoization and a nil
// logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{cache: c, logger: logger}
}

// Close releases the underlying cache.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// Solve returns the optimal move sequence for the configured puzzle,
// consulting the cache first.
func (r *Runner) Solve(ctx context.Context, opts Options) ([]hanoi.Move, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	src, dst, aux, err := opts.Pegs()
	if err != nil {
		return nil, err
	}

	key := cache.MovesKey(opts.Disks, int(src), int(dst), int(aux))
	var moves []hanoi.Move
	if !opts.Refresh {
		if hit, err := r.load(ctx, key, &moves); err != nil {
			return nil, err
		} else if hit {
			opts.Logger.Debug("solve cache hit", "disks", opts.Disks)
			return moves, nil
		}
	}

	start := time.Now()
	if opts.Iterative {
		moves, err = hanoi.SolveIterative(opts.Disks, src, dst, aux)
	} else {
		moves, err = hanoi.Solve(opts.Disks, src, dst, aux)
	}
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("solved", "disks", opts.Disks, "moves", len(moves), "duration", time.Since(start))

	if err := r.store(ctx, key, moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// Trace returns the trace event log for the configured puzzle, consulting
// the cache first. The returned bool reports whether the cache was hit.
func (r *Runner) Trace(ctx context.Context, opts Options) ([]trace.Event, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	src, dst, aux, err := opts.Pegs()
	if err != nil {
		return nil, false, err
	}

	key := cache.TraceKey(opts.Disks, int(src), int(dst), int(aux))
	var events []trace.Event
	if !opts.Refresh {
		if hit, err := r.load(ctx, key, &events); err != nil {
			return nil, false, err
		} else if hit {
			opts.Logger.Debug("trace cache hit", "disks", opts.Disks)
			return events, true, nil
		}
	}

	start := time.Now()
	events, err = trace.BuildEvents(opts.Disks, src, dst, aux)
	if err != nil {
		return nil, false, err
	}
	opts.Logger.Debug("traced", "disks", opts.Disks, "events", len(events), "duration", time.Since(start))

	if err := r.store(ctx, key, events); err != nil {
		return nil, false, err
	}
	return events, false, nil
}

// Render produces the requested artifacts, keyed by format. The returned
// bool reports whether every artifact came from cache.
func (r *Runner) Render(ctx context.Context, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	src, dst, aux, err := opts.Pegs()
	if err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(opts.Disks, int(src), int(dst), int(aux), cache.ArtifactKeyOpts{
			VizType:   opts.VizType,
			Format:    format,
			Width:     opts.Width,
			Height:    opts.Height,
			Step:      opts.Step,
			Highlight: opts.Highlight,
		})
		if !opts.Refresh {
			if data, hit, err := r.cache.Get(ctx, key); err != nil {
				return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "cache read failed")
			} else if hit {
				artifacts[format] = data
				continue
			}
		}
		allHit = false

		data, err := r.renderOne(ctx, opts, src, dst, aux, format)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "cache write failed")
		}
	}
	return artifacts, allHit, nil
}

// renderOne produces a single artifact in the given format.
func (r *Runner) renderOne(ctx context.Context, opts Options, src, dst, aux hanoi.Peg, format string) ([]byte, error) {
	if opts.IsBoard() {
		if format != render.FormatSVG {
			return nil, errors.New(errors.ErrCodeUnsupported, "board visualizations only support svg output, got %q", format)
		}
		state, err := r.boardState(ctx, opts, src, dst, aux)
		if err != nil {
			return nil, err
		}
		return render.RenderBoard(state, render.WithBoardSize(opts.Width, opts.Height)), nil
	}

	events, _, err := r.Trace(ctx, opts)
	if err != nil {
		return nil, err
	}
	dot := render.TreeDOT(opts.Disks, src, dst, aux, events, opts.Highlight)
	switch format {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatPNG:
		return render.RenderTreePNG(ctx, dot)
	default:
		return render.RenderTreeSVG(ctx, dot)
	}
}

// boardState replays the first Step moves of the solution onto the
// initial state.
func (r *Runner) boardState(ctx context.Context, opts Options, src, dst, aux hanoi.Peg) (hanoi.GameState, error) {
	state, err := hanoi.InitialState(opts.Disks)
	if err != nil {
		return hanoi.GameState{}, err
	}
	if opts.Step == 0 {
		return state, nil
	}
	moves, err := r.Solve(ctx, opts)
	if err != nil {
		return hanoi.GameState{}, err
	}
	for _, mv := range moves[:opts.Step] {
		if state, err = hanoi.ApplyMove(state, mv); err != nil {
			return hanoi.GameState{}, err
		}
	}
	return state, nil
}

// Execute runs the full pipeline: solve, trace, render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	start := time.Now()
	moves, err := r.Solve(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Moves = moves
	result.Stats.MoveCount = len(moves)
	result.Stats.SolveTime = time.Since(start)

	start = time.Now()
	events, traceHit, err := r.Trace(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Events = events
	result.Stats.EventCount = len(events)
	result.Stats.TraceTime = time.Since(start)
	result.CacheInfo.TraceHit = traceHit

	start = time.Now()
	artifacts, renderHit, err := r.Render(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = renderHit

	return result, nil
}

// load reads and decodes a cached JSON value into dst. It returns false
// on a miss or a decode failure; stale encodings are treated as misses.
func (r *Runner) load(ctx context.Context, key string, dst any) (bool, error) {
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "cache read failed")
	}
	if !hit {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn("discarding undecodable cache entry", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// store encodes a value as JSON and writes it to the cache.
func (r *Runner) store(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cache encode failed")
	}
	if err := r.cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cache write failed")
	}
	return nil
}
