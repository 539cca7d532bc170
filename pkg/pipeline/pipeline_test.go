package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/hanoitower/pkg/cache"
	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/render"
)

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Disks != DefaultDisks {
		t.Errorf("Disks = %d, want %d", opts.Disks, DefaultDisks)
	}
	if opts.Source != "A" || opts.Dest != "C" || opts.Aux != "B" {
		t.Errorf("pegs = %s/%s/%s, want A/C/B", opts.Source, opts.Dest, opts.Aux)
	}
	if opts.VizType != render.VizTypeBoard {
		t.Errorf("VizType = %q, want %q", opts.VizType, render.VizTypeBoard)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != render.FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative disks", Options{Disks: -1}, errors.ErrCodeInvalidDiskCount},
		{"too many disks", Options{Disks: MaxDisks + 1}, errors.ErrCodeInvalidDiskCount},
		{"bad peg", Options{Disks: 3, Source: "D"}, errors.ErrCodeInvalidPeg},
		{"duplicate pegs", Options{Disks: 3, Source: "A", Dest: "A"}, errors.ErrCodeInvalidPeg},
		{"bad viz type", Options{Disks: 3, VizType: "chart"}, errors.ErrCodeInvalidVizType},
		{"bad format", Options{Disks: 3, Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"step out of range", Options{Disks: 3, Step: 8}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestRunnerSolve(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil)
	defer runner.Close()

	opts := Options{Disks: 4}
	moves, err := runner.Solve(context.Background(), opts)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(moves) != 15 {
		t.Fatalf("len(moves) = %d, want 15", len(moves))
	}

	// Second call must hit the cache and return the same sequence.
	cached, err := runner.Solve(context.Background(), opts)
	if err != nil {
		t.Fatalf("Solve() cached error = %v", err)
	}
	for i, mv := range cached {
		if mv != moves[i] {
			t.Fatalf("cached move %d = %v, want %v", i, mv, moves[i])
		}
	}
}

func TestRunnerSolveIterative(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	recursive, err := runner.Solve(context.Background(), Options{Disks: 5})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	iterative, err := runner.Solve(context.Background(), Options{Disks: 5, Iterative: true})
	if err != nil {
		t.Fatalf("Solve(iterative) error = %v", err)
	}
	if len(recursive) != len(iterative) {
		t.Fatalf("move counts differ: %d vs %d", len(recursive), len(iterative))
	}
	for i := range recursive {
		if recursive[i] != iterative[i] {
			t.Fatalf("move %d differs: %v vs %v", i, recursive[i], iterative[i])
		}
	}
}

func TestRunnerTraceCaching(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil)
	defer runner.Close()

	opts := Options{Disks: 3}
	events, hit, err := runner.Trace(context.Background(), opts)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if hit {
		t.Error("first Trace() reported a cache hit")
	}
	if len(events) != 3*7 {
		t.Fatalf("len(events) = %d, want 21", len(events))
	}

	cached, hit, err := runner.Trace(context.Background(), opts)
	if err != nil {
		t.Fatalf("Trace() cached error = %v", err)
	}
	if !hit {
		t.Error("second Trace() missed the cache")
	}
	if len(cached) != len(events) {
		t.Fatalf("cached len = %d, want %d", len(cached), len(events))
	}
	for i := range events {
		if cached[i].Type != events[i].Type || cached[i].NodeID != events[i].NodeID || cached[i].T != events[i].T {
			t.Fatalf("cached event %d = %+v, want %+v", i, cached[i], events[i])
		}
	}
}

func TestRunnerTraceRefresh(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil)
	defer runner.Close()

	if _, _, err := runner.Trace(context.Background(), Options{Disks: 3}); err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	_, hit, err := runner.Trace(context.Background(), Options{Disks: 3, Refresh: true})
	if err != nil {
		t.Fatalf("Trace(refresh) error = %v", err)
	}
	if hit {
		t.Error("Refresh should bypass cache reads")
	}
}

func TestRunnerRenderBoard(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil)
	defer runner.Close()

	artifacts, hit, err := runner.Render(context.Background(), Options{Disks: 3, VizType: VizTypeBoard})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if hit {
		t.Error("first Render() reported a cache hit")
	}
	svg := string(artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("board artifact does not look like SVG: %.40s", svg)
	}

	_, hit, err = runner.Render(context.Background(), Options{Disks: 3, VizType: VizTypeBoard})
	if err != nil {
		t.Fatalf("Render() cached error = %v", err)
	}
	if !hit {
		t.Error("second Render() missed the cache")
	}
}

func TestRunnerRenderBoardStep(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	initial, _, err := runner.Render(context.Background(), Options{Disks: 3})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	stepped, _, err := runner.Render(context.Background(), Options{Disks: 3, Step: 4})
	if err != nil {
		t.Fatalf("Render(step) error = %v", err)
	}
	if string(initial[FormatSVG]) == string(stepped[FormatSVG]) {
		t.Error("board after 4 moves should render differently from the initial board")
	}
}

func TestRunnerRenderBoardRejectsPNG(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	_, _, err := runner.Render(context.Background(), Options{Disks: 3, Formats: []string{FormatPNG}})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("expected UNSUPPORTED error, got %v", err)
	}
}

func TestRunnerRenderTreeDOT(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil)
	defer runner.Close()

	artifacts, _, err := runner.Render(context.Background(), Options{
		Disks:     2,
		VizType:   VizTypeTree,
		Formats:   []string{FormatDOT},
		Highlight: render.NoHighlight,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	dot := string(artifacts[FormatDOT])
	if !strings.Contains(dot, "digraph") {
		t.Errorf("tree artifact does not look like DOT: %.40s", dot)
	}
	if !strings.Contains(dot, "n2:0->2|aux1") {
		t.Errorf("DOT output missing root node id:\n%s", dot)
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{Disks: 3})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Stats.MoveCount != hanoi.MoveCount(3) {
		t.Errorf("MoveCount = %d, want %d", result.Stats.MoveCount, hanoi.MoveCount(3))
	}
	if result.Stats.EventCount != 3*hanoi.MoveCount(3) {
		t.Errorf("EventCount = %d, want %d", result.Stats.EventCount, 3*hanoi.MoveCount(3))
	}
	if len(result.Artifacts) != 1 {
		t.Errorf("len(Artifacts) = %d, want 1", len(result.Artifacts))
	}
	if result.CacheInfo.TraceHit || result.CacheInfo.RenderHit {
		t.Error("cold run should not report cache hits")
	}

	again, err := runner.Execute(context.Background(), Options{Disks: 3})
	if err != nil {
		t.Fatalf("Execute() second run error = %v", err)
	}
	if !again.CacheInfo.TraceHit || !again.CacheInfo.RenderHit {
		t.Error("warm run should hit cache for trace and render")
	}
}
