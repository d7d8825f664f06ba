// Package pipeline provides the load → layout → render pipeline shared by the
// CLI and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a grid document from a file or a built-in preset
//  2. Layout: place the components on a board and compute their bounds
//  3. Render: encode the resulting frame in one or more formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "preset:calculator",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// PresetPrefix marks a source that names a built-in preset instead of a file.
const PresetPrefix = "preset:"

// DefaultScale is the PNG scale factor when none is given.
const DefaultScale = 1.0

// MaxScale bounds the PNG scale factor.
const MaxScale = 8.0

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Source string `json:"source,omitempty"` // file path or "preset:<name>"

	// Layout options. Zero means "use the document's container size".
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Thumb   int      `json:"thumb,omitempty"` // PNG max side after scaling, 0 = full size

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded grid document.
	Document *config.Document

	// Board holds the placed widgets with their final bounds.
	Board *widget.Board

	// Frame is the geometry of the layout pass.
	Frame render.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Components int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
	Bytes      int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeUnsupported, "invalid format: %q (must be one of: json, svg, png, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme name is known. The empty name is valid.
func ValidateTheme(theme string) error {
	if _, ok := sink.LookupTheme(theme); !ok {
		return errors.New(errors.ErrCodeUnsupported, "invalid theme: %q (must be one of: %s)", theme, strings.Join(sink.Themes(), ", "))
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in render defaults and a discarding logger.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the container override and the render options.
func (o *Options) Validate() error {
	if err := errors.ValidateContainer(o.Width, o.Height); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %.2f out of range (0, %.0f]", o.Scale, MaxScale)
	}
	if o.Thumb < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "thumb must be non-negative, got %d", o.Thumb)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateTheme(o.Theme)
}

// ValidateAndSetDefaults applies defaults and validates the result.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// IsPreset reports whether the source names a built-in preset.
func (o *Options) IsPreset() bool {
	return strings.HasPrefix(o.Source, PresetPrefix)
}

// Container returns the container size, preferring the override in o over
// the document's own size.
func (o *Options) Container(doc *config.Document) (width, height int) {
	width, height = doc.Width, doc.Height
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}
	return width, height
}

// UseDocumentTheme fills in the document's theme when o names none.
func (o *Options) UseDocumentTheme(doc *config.Document) {
	if o.Theme == "" {
		o.Theme = doc.Theme
	}
}
