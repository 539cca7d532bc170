package api

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/render"
	"github.com/matzehuels/hanoitower/pkg/trace"
)

// optionsFromQuery builds pipeline options from the shared query
// parameters: disks, from, to, via, iterative, refresh.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Source:    q.Get("from"),
		Dest:      q.Get("to"),
		Aux:       q.Get("via"),
		Iterative: q.Get("iterative") == "true",
		Refresh:   q.Get("refresh") == "true",
		Highlight: render.NoHighlight,
	}

	var err error
	if opts.Disks, err = intParam(r, "disks", pipeline.DefaultDisks); err != nil {
		return opts, err
	}
	return opts, nil
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "parameter %q must be an integer, got %q", name, raw)
	}
	return v, nil
}

// floatParam parses an optional float query parameter.
func floatParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "parameter %q must be a number, got %q", name, raw)
	}
	return v, nil
}

// solveResponse is the JSON body for GET /api/solve.
type solveResponse struct {
	Disks     int          `json:"disks"`
	Source    string       `json:"source"`
	Dest      string       `json:"dest"`
	MoveCount int          `json:"move_count"`
	Moves     []hanoi.Move `json:"moves"`
}

// handleSolve implements GET /api/solve.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return
	}
	moves, err := s.runner.Solve(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, solveResponse{
		Disks:     opts.Disks,
		Source:    opts.Source,
		Dest:      opts.Dest,
		MoveCount: len(moves),
		Moves:     moves,
	})
}

// traceResponse is the JSON body for GET /api/trace.
type traceResponse struct {
	Disks      int           `json:"disks"`
	EventCount int           `json:"event_count"`
	Events     []trace.Event `json:"events"`
}

// handleTrace implements GET /api/trace.
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return
	}
	events, _, err := s.runner.Trace(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, traceResponse{
		Disks:      opts.Disks,
		EventCount: len(events),
		Events:     events,
	})
}

// activeNodeResponse is the JSON body for GET /api/trace/active.
type activeNodeResponse struct {
	T      int    `json:"t"`
	NodeID string `json:"node_id,omitempty"`
	Active bool   `json:"active"`
}

// handleActiveNode implements GET /api/trace/active.
// It reports which recursive call is active at timestamp t.
func (s *Server) handleActiveNode(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	t, err := intParam(r, "t", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	events, _, err := s.runner.Trace(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	id, ok := trace.ActiveNodeAt(events, t)
	writeJSON(w, http.StatusOK, activeNodeResponse{T: t, NodeID: id, Active: ok})
}

// handleBoardSVG implements GET /api/board.svg.
// Accepts step, width, and height on top of the shared parameters.
func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.VizType = pipeline.VizTypeBoard
	opts.Formats = []string{pipeline.FormatSVG}
	if opts.Step, err = intParam(r, "step", 0); err != nil {
		writeError(w, err)
		return
	}
	if opts.Width, err = floatParam(r, "width", render.DefaultBoardWidth); err != nil {
		writeError(w, err)
		return
	}
	if opts.Height, err = floatParam(r, "height", render.DefaultBoardHeight); err != nil {
		writeError(w, err)
		return
	}

	artifacts, _, err := s.runner.Render(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

// handleTreeArtifact builds the handler for one recursion-tree format.
// Accepts highlight on top of the shared parameters.
func (s *Server) handleTreeArtifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := optionsFromQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}
		opts.VizType = pipeline.VizTypeTree
		opts.Formats = []string{format}
		if opts.Highlight, err = intParam(r, "highlight", render.NoHighlight); err != nil {
			writeError(w, err)
			return
		}

		artifacts, _, err := s.runner.Render(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(artifacts[format])
	}
}
