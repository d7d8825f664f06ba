package sink

import (
	"encoding/json"

	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	source string
	sizes  *jsonSizes
}

// WithJSONSource records where the layout came from (a file path or preset
// name).
func WithJSONSource(s string) JSONOption { return func(r *jsonRenderer) { r.source = s } }

// WithJSONSizes records the aggregate preferred, minimum and maximum sizes
// of the grid the frame was produced from.
func WithJSONSizes(preferred, minimum, maximum grid.Size) JSONOption {
	return func(r *jsonRenderer) {
		r.sizes = &jsonSizes{Preferred: preferred, Minimum: minimum, Maximum: maximum}
	}
}

type jsonOutput struct {
	Source  string      `json:"source,omitempty"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Gap     int         `json:"gap"`
	Padding grid.Insets `json:"padding"`
	Sizes   *jsonSizes  `json:"sizes,omitempty"`
	Boxes   []jsonBox   `json:"boxes"`
}

type jsonSizes struct {
	Preferred grid.Size `json:"preferred"`
	Minimum   grid.Size `json:"minimum"`
	Maximum   grid.Size `json:"maximum"`
}

type jsonBox struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Slot   string `json:"slot"`
	Span   bool   `json:"span,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RenderJSON exports the frame as a pretty-printed JSON document. Boxes are
// listed row-major with their slot written as a "row,column" constraint, so
// the output can be fed back into a grid document.
func RenderJSON(f render.Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	f.Boxes = append([]render.Box(nil), f.Boxes...)
	f.SortBoxes()

	out := jsonOutput{
		Source:  r.source,
		Width:   f.Width,
		Height:  f.Height,
		Gap:     f.Gap,
		Padding: f.Padding,
		Sizes:   r.sizes,
		Boxes:   make([]jsonBox, 0, len(f.Boxes)),
	}
	for _, b := range f.Boxes {
		out.Boxes = append(out.Boxes, jsonBox{
			ID:     b.ID,
			Label:  b.Label,
			Slot:   b.Position().Constraint(),
			Span:   b.Span,
			X:      b.Bounds.X,
			Y:      b.Bounds.Y,
			Width:  b.Bounds.Width,
			Height: b.Bounds.Height,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
