// Package api implements the hanoitower HTTP API.
//
// The API exposes the solver pipeline over REST: move sequences, trace
// event logs, rendered board and recursion-tree artifacts, and resumable
// game sessions. All responses are JSON except the artifact endpoints,
// which return image bytes directly.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hanoitower/pkg/buildinfo"
	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/session"
)

// Server serves the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	sessions session.Store
	logger   *log.Logger
}

// NewServer creates a server around a pipeline runner and a session store.
func NewServer(runner *pipeline.Runner, sessions session.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, sessions: sessions, logger: logger}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/solve", s.handleSolve)
		r.Get("/trace", s.handleTrace)
		r.Get("/trace/active", s.handleActiveNode)
		r.Get("/board.svg", s.handleBoardSVG)
		r.Get("/tree.svg", s.handleTreeArtifact(pipeline.FormatSVG, "image/svg+xml"))
		r.Get("/tree.png", s.handleTreeArtifact(pipeline.FormatPNG, "image/png"))
		r.Get("/tree.dot", s.handleTreeArtifact(pipeline.FormatDOT, "text/vnd.graphviz"))

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", s.handleSessionList)
			r.Post("/", s.handleSessionCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleSessionGet)
				r.Delete("/", s.handleSessionDelete)
				r.Post("/advance", s.handleSessionAdvance)
				r.Post("/reset", s.handleSessionReset)
				r.Get("/board.svg", s.handleSessionBoard)
			})
		})
	})

	return r
}

// handleHealth implements GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
