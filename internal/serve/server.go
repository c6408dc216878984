// Package serve exposes the inspector over a small local web UI.
package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dtnitsch/og-preview/internal/common"
	"github.com/dtnitsch/og-preview/models"
	"github.com/dtnitsch/og-preview/pkg/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Inspector is the part of the pipeline the server needs.
type Inspector interface {
	Inspect(ctx context.Context, target string) (*models.Report, error)
}

// Server handles each request as an independent inspection.
type Server struct {
	inspector Inspector
	timeout   time.Duration
	logger    *slog.Logger
	router    *chi.Mux
}

func NewServer(in Inspector, timeout time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = models.DefaultTimeout
	}

	s := &Server{inspector: in, timeout: timeout, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/preview", s.handlePreview)
	r.Get("/api/inspect", s.handleAPI)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	s.router = r
	return s
}

// requestLogger logs one slog line per request so server output matches the
// JSON stream the rest of the tool writes.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"elapsed", time.Since(start),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en"><head><meta charset="utf-8"><title>OG Preview</title></head>
<body style="font-family:sans-serif;max-width:640px;margin:40px auto">
<h1>OG Preview</h1>
<form action="/preview" method="get">
<input type="text" name="url" placeholder="https://example.com/post" style="width:70%" autofocus>
<button type="submit">Inspect</button>
</form>
</body></html>`))

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger.Error("failed to render index", "error", err)
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	report, status, err := s.inspect(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, report); err != nil {
		s.logger.Error("failed to render report", "url", report.URL, "error", err)
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	report, status, err := s.inspect(r)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		s.logger.Error("failed to encode report", "url", report.URL, "error", err)
	}
}

// inspect validates the url query parameter and runs the pipeline, mapping
// failures onto HTTP status codes.
func (s *Server) inspect(r *http.Request) (*models.Report, int, error) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		return nil, http.StatusBadRequest, errors.New("missing url parameter")
	}
	target, err := common.NormalizeTarget(raw)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	report, err := s.inspector.Inspect(ctx, target)
	if err != nil {
		s.logger.Error("inspection failed", "url", target, "error", err)
		return nil, http.StatusBadGateway, fmt.Errorf("inspection failed: %w", err)
	}
	return report, http.StatusOK, nil
}
