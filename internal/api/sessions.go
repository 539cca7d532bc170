package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/render"
	"github.com/matzehuels/hanoitower/pkg/session"
)

// sessionResponse is the JSON body for session endpoints.
type sessionResponse struct {
	*session.Session
	MoveCount int             `json:"move_count"`
	Finished  bool            `json:"finished"`
	Pegs      hanoi.GameState `json:"pegs"`
}

// newSessionResponse attaches the derived game state to a session.
func newSessionResponse(sess *session.Session) (sessionResponse, error) {
	state, err := sess.State()
	if err != nil {
		return sessionResponse{}, err
	}
	return sessionResponse{
		Session:   sess,
		MoveCount: hanoi.MoveCount(sess.Disks),
		Finished:  sess.Finished(),
		Pegs:      state,
	}, nil
}

// handleSessionList implements GET /api/sessions.
func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []*session.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

// handleSessionCreate implements POST /api/sessions.
func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Disks int `json:"disks"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid request body"))
			return
		}
	}
	if req.Disks == 0 {
		req.Disks = pipeline.DefaultDisks
	}
	if req.Disks > pipeline.MaxDisks {
		writeError(w, errors.New(errors.ErrCodeInvalidDiskCount, "disk count %d exceeds maximum %d", req.Disks, pipeline.MaxDisks))
		return
	}

	sess := session.New(req.Disks)
	if err := sess.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	resp, err := newSessionResponse(sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleSessionGet implements GET /api/sessions/{id}.
func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := newSessionResponse(sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSessionDelete implements DELETE /api/sessions/{id}.
func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionAdvance implements POST /api/sessions/{id}/advance.
// The body may set "steps" (default 1); negative steps rewind.
func (s *Server) handleSessionAdvance(w http.ResponseWriter, r *http.Request) {
	steps := 1
	if r.ContentLength != 0 {
		var req struct {
			Steps int `json:"steps"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid request body"))
			return
		}
		steps = req.Steps
	}

	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	next := sess.MoveIndex + steps
	if next < 0 || next > hanoi.MoveCount(sess.Disks) {
		writeError(w, errors.New(errors.ErrCodeIllegalMove, "move index %d out of range for %d disks", next, sess.Disks))
		return
	}
	sess.MoveIndex = next
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	resp, err := newSessionResponse(sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSessionReset implements POST /api/sessions/{id}/reset.
func (s *Server) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	sess.MoveIndex = 0
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	resp, err := newSessionResponse(sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSessionBoard implements GET /api/sessions/{id}/board.svg.
// It renders the board at the session's current move index.
func (s *Server) handleSessionBoard(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Disks:     sess.Disks,
		Step:      sess.MoveIndex,
		VizType:   pipeline.VizTypeBoard,
		Formats:   []string{pipeline.FormatSVG},
		Highlight: render.NoHighlight,
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
