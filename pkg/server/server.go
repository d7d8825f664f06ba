// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                       liveness and build version
//	GET  /v1/presets                    list built-in presets
//	GET  /v1/presets/{name}             render a preset
//	GET  /v1/presets/{name}/document    the preset as a TOML, YAML or JSON document
//	POST /v1/layout                     render a document sent in the body
//
// Render routes accept the query parameters format (json, svg, png, txt),
// width, height, theme, scale and thumb. Errors are returned as JSON objects with a
// code and a message.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/slotgrid/pkg/cache"
	"github.com/matzehuels/slotgrid/pkg/observability"
	"github.com/matzehuels/slotgrid/pkg/pipeline"
)

// MaxBodyBytes bounds the size of a posted document.
const MaxBodyBytes = 1 << 20

// Server serves layout requests. Every request builds its own board, so a
// Server is safe for concurrent use.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	router   chi.Router
	cache    cache.Cache
	cacheTTL time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCache stores rendered artifacts in c for ttl (zero keeps them until
// evicted). Responses report X-Cache: hit or miss.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) { s.cache, s.cacheTTL = c, ttl }
}

// New creates a server that logs to logger. Without [WithCache] nothing is
// cached.
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: pipeline.NewRunner(logger),
		logger: logger,
		cache:  cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/presets", s.handleListPresets)
		r.Get("/presets/{name}", s.handleRenderPreset)
		r.Get("/presets/{name}/document", s.handlePresetDocument)
		r.Post("/layout", s.handleLayout)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed on "+r.URL.Path)
	})
	return r
}

// logRequests logs every request at info level and forwards it to the HTTP
// hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", d,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
