package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/observability"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// Runner executes pipeline stages and reports them to the observability
// hooks.
//
// The Runner is stateless except for the logger. Every run builds its own
// board, so multiple goroutines can safely use the same Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := r.Load(ctx, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Document = doc
	opts.UseDocumentTheme(doc)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Components = len(doc.Components)

	// Stage 2: Layout
	layoutStart := time.Now()
	board, frame, err := r.Layout(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Board = board
	result.Frame = frame
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layout",
		"source", opts.Source,
		"boxes", len(frame.Boxes),
		"container", fmt.Sprintf("%dx%d", frame.Width, frame.Height),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, frame, board, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the source to a document.
func (r *Runner) Load(ctx context.Context, source string) (doc *config.Document, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	defer func() {
		n := 0
		if doc != nil {
			n = len(doc.Components)
		}
		hooks.OnLoadComplete(ctx, source, n, time.Since(start), err)
	}()

	doc, err = Load(source)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded document", "source", source, "components", len(doc.Components), "gap", doc.Gap)
	return doc, nil
}

// Layout places the document's components and computes their bounds.
func (r *Runner) Layout(ctx context.Context, doc *config.Document, opts Options) (board *widget.Board, frame render.Frame, err error) {
	if err := ctx.Err(); err != nil {
		return nil, render.Frame{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Source, len(doc.Components))
	start := time.Now()
	defer func() {
		hooks.OnLayoutComplete(ctx, opts.Source, len(frame.Boxes), time.Since(start), err)
	}()

	board, frame, err = Layout(doc, opts)
	if err != nil {
		return nil, render.Frame{}, err
	}
	r.Logger.Debug("placed components", "widgets", board.Len(), "preferred", board.PreferredSize())
	return board, frame, nil
}

// Render encodes the frame in every requested format, checking for
// cancellation between formats.
func (r *Runner) Render(ctx context.Context, frame render.Frame, board *widget.Board, opts Options) (artifacts map[string][]byte, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		n := 0
		for _, data := range artifacts {
			n += len(data)
		}
		hooks.OnRenderComplete(ctx, opts.Formats, n, time.Since(start), err)
	}()

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := RenderFormat(format, frame, board, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		r.Logger.Debug("rendered", "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
