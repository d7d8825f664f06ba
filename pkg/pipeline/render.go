package pipeline

import (
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// RenderFormat renders a single format. board is optional; when set, its
// aggregate sizes are recorded in JSON output.
func RenderFormat(format string, frame render.Frame, board *widget.Board, opts Options) ([]byte, error) {
	theme, ok := sink.LookupTheme(opts.Theme)
	if !ok {
		return nil, ValidateTheme(opts.Theme)
	}

	switch format {
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONSource(opts.Source)}
		if board != nil {
			jsonOpts = append(jsonOpts, sink.WithJSONSizes(board.PreferredSize(), board.MinimumSize(), board.MaximumSize()))
		}
		return sink.RenderJSON(frame, jsonOpts...)
	case FormatSVG:
		return sink.RenderSVG(frame, sink.WithSVGTheme(theme), sink.WithSVGTitle(opts.Source)), nil
	case FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		return sink.RenderPNG(frame, sink.WithPNGTheme(theme), sink.WithScale(scale), sink.WithThumbnail(opts.Thumb))
	case FormatText:
		return sink.RenderText(frame), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
