package render

import (
	"cmp"
	"slices"

	"github.com/matzehuels/slotgrid/pkg/grid"
)

// Frame is the output of one layout pass.
type Frame struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Gap     int         `json:"gap"`
	Padding grid.Insets `json:"padding"`
	Boxes   []Box       `json:"boxes"`
}

// Box is a laid-out component.
type Box struct {
	ID     string      `json:"id"`
	Label  string      `json:"label"`
	Row    int         `json:"row"`
	Column int         `json:"column"`
	Span   bool        `json:"span,omitempty"`
	Bounds grid.Bounds `json:"bounds"`
}

// Position returns the grid position of the box.
func (b Box) Position() grid.Position { return grid.Position{Row: b.Row, Column: b.Column} }

// SortBoxes orders boxes row-major, which is also the order a layout pass
// emits them in.
func (f *Frame) SortBoxes() {
	slices.SortFunc(f.Boxes, func(a, b Box) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
}

// Box returns the box with the given label.
func (f *Frame) Box(label string) (Box, bool) {
	for _, b := range f.Boxes {
		if b.Label == label {
			return b, true
		}
	}
	return Box{}, false
}

// Scale returns a copy of f with every coordinate multiplied by sx and sy
// and rounded down. Terminal sinks use it to map pixels onto character cells.
func (f Frame) Scale(sx, sy float64) Frame {
	out := f
	out.Width = int(float64(f.Width) * sx)
	out.Height = int(float64(f.Height) * sy)
	out.Boxes = make([]Box, len(f.Boxes))
	for i, b := range f.Boxes {
		x0 := int(float64(b.Bounds.X) * sx)
		y0 := int(float64(b.Bounds.Y) * sy)
		x1 := int(float64(b.Bounds.Right()) * sx)
		y1 := int(float64(b.Bounds.Bottom()) * sy)
		b.Bounds = grid.Bounds{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
		out.Boxes[i] = b
	}
	return out
}
