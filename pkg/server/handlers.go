package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/slotgrid/pkg/buildinfo"
	"github.com/matzehuels/slotgrid/pkg/cache"
	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/pipeline"
	"github.com/matzehuels/slotgrid/pkg/preset"
)

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

var documentTypes = map[string]config.Format{
	"application/json":   config.FormatJSON,
	"application/toml":   config.FormatTOML,
	"application/yaml":   config.FormatYAML,
	"application/x-yaml": config.FormatYAML,
	"text/yaml":          config.FormatYAML,
}

type presetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Components  int    `json:"components"`
	Gap         int    `json:"gap"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	all := preset.All()
	out := make([]presetInfo, 0, len(all))
	for _, p := range all {
		doc := p.Document()
		out = append(out, presetInfo{
			Name:        p.Name,
			Description: p.Description,
			Components:  len(doc.Components),
			Gap:         doc.Gap,
			Width:       doc.Width,
			Height:      doc.Height,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRenderPreset(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Source = pipeline.PresetPrefix + chi.URLParam(r, "name")

	key := artifactKey(opts.Source, opts)
	if s.serveCached(w, r, key, opts.Formats[0]) {
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.store(r, key, result.Artifacts[opts.Formats[0]])
	writeArtifact(w, opts.Formats[0], result.Artifacts[opts.Formats[0]])
}

func (s *Server) handlePresetDocument(w http.ResponseWriter, r *http.Request) {
	p, err := preset.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	format := config.FormatYAML
	if q := r.URL.Query().Get("format"); q != "" {
		if format, err = config.ParseFormat(q); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	data, err := config.Encode(p.Document(), format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/"+string(format))
	_, _ = w.Write(data)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Source = "request"

	format := config.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, _ := mime.ParseMediaType(ct)
		f, ok := documentTypes[mt]
		if !ok {
			writeError(w, http.StatusUnsupportedMediaType, string(errors.ErrCodeUnsupported), "unsupported content type "+strconv.Quote(ct))
			return
		}
		format = f
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body (limit %d bytes)", MaxBodyBytes))
		return
	}
	key := artifactKey(string(format)+":"+cache.Hash(data), opts)
	if s.serveCached(w, r, key, opts.Formats[0]) {
		return
	}

	doc, err := config.Decode(data, format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.UseDocumentTheme(doc)

	board, frame, err := s.runner.Layout(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	artifacts, err := s.runner.Render(r.Context(), frame, board, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.store(r, key, artifacts[opts.Formats[0]])
	writeArtifact(w, opts.Formats[0], artifacts[opts.Formats[0]])
}

func artifactKey(input string, opts pipeline.Options) string {
	return cache.ArtifactKey(input, cache.ArtifactKeyOpts{
		Format: opts.Formats[0],
		Width:  opts.Width,
		Height: opts.Height,
		Theme:  opts.Theme,
		Scale:  opts.Scale,
		Thumb:  opts.Thumb,
	})
}

// serveCached writes the cached artifact for key and reports whether there
// was one. Cache read errors are logged and treated as misses.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, key, format string) bool {
	data, hit, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "err", err)
	}
	if !hit || err != nil {
		w.Header().Set("X-Cache", "miss")
		return false
	}
	w.Header().Set("X-Cache", "hit")
	writeArtifact(w, format, data)
	return true
}

func (s *Server) store(r *http.Request, key string, data []byte) {
	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
	}
}

// renderOptions reads format, width, height, theme, scale and thumb from the
// query.
// Exactly one format is rendered per request.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Theme: q.Get("theme")}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	for _, p := range []struct {
		name string
		dst  *int
	}{{"width", &opts.Width}, {"height", &opts.Height}, {"thumb", &opts.Thumb}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", p.name, v)
		}
		*p.dst = n
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number, got %q", v)
		}
		opts.Scale = f
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch code := errors.GetCode(err); {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.IsPlacement(err):
		return http.StatusUnprocessableEntity
	case code == errors.ErrCodeNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeInvalidSize, code == errors.ErrCodeUnsupported, code == errors.ErrCodeInvalidConfig,
		code == errors.ErrCodeInvalidInput, code == errors.ErrCodeInvalidGap:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		msg = "internal error"
	}
	writeError(w, status, code, msg)
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"code": code, "message": msg})
}
