// Package api exposes the generation pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"ebookforge/internal/config"
	"ebookforge/internal/model"
)

// Runner runs the generation pipeline for a single request.
type Runner interface {
	Run(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error)
}

// Server holds the HTTP handlers and dependencies.
type Server struct {
	pipeline Runner
	cfg      config.Config
	mux      *http.ServeMux
}

// New creates a new API server.
func New(pipeline Runner, cfg config.Config) *Server {
	srv := &Server{pipeline: pipeline, cfg: cfg, mux: http.NewServeMux()}
	srv.routes()
	return srv
}

// Handler returns the root http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.cfg.CORSOrigin, limitBody(s.cfg.MaxUploadBytes, s.mux))
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /", s.handleHealth)
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)
}

// ---------------------------------------------------------------------------
// Middleware
// ---------------------------------------------------------------------------

// corsMiddleware sets CORS headers for the configured origin.
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// limitBody restricts the request body to maxBytes.
func limitBody(maxBytes int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		next.ServeHTTP(w, r)
	})
}

// ---------------------------------------------------------------------------
// Response helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
