package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"ebookforge/internal/engine"
	"ebookforge/internal/model"
)

// multipartMemory is how much of the parsed form is kept in memory before
// spilling to disk. The total body size is already capped by middleware.
const multipartMemory int64 = 8 << 20

// ---------------------------------------------------------------------------
// GET /
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ebookforge backend is up")
}

// ---------------------------------------------------------------------------
// POST /api/generate
// ---------------------------------------------------------------------------

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := model.GenerationRequest{
		PrimaryText:  r.FormValue("text"),
		Personality:  r.FormValue("personality"),
		GeminiAPIKey: r.FormValue("gemini_api_key"),
		OpenAIAPIKey: r.FormValue("openai_api_key"),
		Model:        r.FormValue("model"),
		EditModel:    r.FormValue("edit_model"),
		OutputPath:   r.FormValue("output_path"),
	}

	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			slog.Warn("skipping unreadable upload", "filename", header.Filename, "error", err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			slog.Warn("skipping unreadable upload", "filename", header.Filename, "error", err)
			continue
		}
		req.Uploads = append(req.Uploads, model.Upload{Filename: header.Filename, Data: data})
	}

	res, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("generation failed", "error", err)
		}
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, res.OutputPath)
}

// statusFor maps pipeline failures to HTTP status codes: validation and
// model construction problems are the caller's to fix, everything else is a
// server-side failure.
func statusFor(err error) int {
	var se *engine.StepError
	if errors.As(err, &se) {
		switch se.StepName() {
		case engine.StepValidate, engine.StepInit:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
