// Package server exposes sheet rendering over HTTP.
//
// Routes:
//
//	GET /healthz                            liveness probe
//	GET /themes                             built-in themes as JSON
//	GET /sheets/{theme}?format=&seed=&scale= one rendered sheet
//
// Sheet responses carry the render ID and the seed that drew the texture
// in the X-Render-ID and X-Render-Seed headers. Requests with a seed are
// served from the runner's cache when possible.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/pipeline"
	"github.com/matzehuels/winesheet/pkg/render"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// DefaultTimeout bounds a single request, PNG conversion included.
const DefaultTimeout = 60 * time.Second

// Config configures a Server.
type Config struct {
	Runner  *pipeline.Runner
	Logger  *log.Logger
	FontDir string
	Timeout time.Duration
}

// Server renders sheets on request.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	fontDir string
	timeout time.Duration
}

// New creates a server. A nil runner renders without a cache.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Server{
		runner:  cfg.Runner,
		logger:  cfg.Logger,
		fontDir: cfg.FontDir,
		timeout: cfg.Timeout,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.health)
	r.Get("/themes", s.themes)
	r.Get("/sheets/{theme}", s.sheet)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// ThemeInfo is the JSON description of a built-in theme.
type ThemeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stroke      string `json:"stroke"`
	Background  string `json:"background"`
	Output      string `json:"output"`
	Font        string `json:"font,omitempty"`
}

func (s *Server) themes(w http.ResponseWriter, _ *http.Request) {
	all := theme.All()
	out := make([]ThemeInfo, 0, len(all))
	for _, t := range all {
		out = append(out, ThemeInfo{
			Name:        t.Name,
			Description: t.Description,
			Stroke:      string(t.Stroke),
			Background:  string(t.Background),
			Output:      t.Output,
			Font:        t.Font.File,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) sheet(w http.ResponseWriter, r *http.Request) {
	opts, err := s.sheetOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	data := res.Artifacts[format]
	h := w.Header()
	h.Set("Content-Type", render.Format(format).ContentType())
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set("Content-Disposition", `inline; filename="`+res.Filename(format)+`"`)
	h.Set("X-Render-ID", res.ID)
	h.Set("X-Render-Seed", strconv.FormatUint(res.Seed, 10))
	if res.CacheInfo.RenderHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// sheetOptions maps the route and query parameters onto pipeline options.
func (s *Server) sheetOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Theme:   chi.URLParam(r, "theme"),
		FontDir: s.fontDir,
	}
	if err := errors.ValidateThemeName(opts.Theme); err != nil {
		return opts, err
	}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q: want an unsigned integer", v)
		}
		opts.Seed = pipeline.Seed(seed)
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 || scale > 8 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q: want a number in (0, 8]", v)
		}
		opts.Scale = scale
	}
	if q.Get("refresh") == "true" {
		opts.Refresh = true
	}
	return opts, opts.ValidateAndSetDefaults()
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorBody{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	case errors.Is(err, errors.ErrCodeTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// logRequests logs one line per request with the structured logger.
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
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
