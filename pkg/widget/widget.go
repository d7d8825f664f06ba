// Package widget provides the labelled components slotgrid lays out and the
// Board that ties them to a grid.
package widget

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/slotgrid/pkg/grid"
)

// Widget is a labelled rectangle with optional size hints. A widget stores
// the bounds it was last given and nothing else; drawing it is up to a sink.
type Widget struct {
	ID    uuid.UUID
	Label string

	Preferred *grid.Size
	Minimum   *grid.Size
	Maximum   *grid.Size

	bounds  grid.Bounds
	laidOut bool
}

// New returns a widget with a fresh random ID and no size hints.
func New(label string) *Widget {
	return &Widget{ID: uuid.New(), Label: label}
}

// WithPreferred sets the preferred size hint and returns w.
func (w *Widget) WithPreferred(width, height int) *Widget {
	w.Preferred = &grid.Size{Width: width, Height: height}
	return w
}

// WithMinimum sets the minimum size hint and returns w.
func (w *Widget) WithMinimum(width, height int) *Widget {
	w.Minimum = &grid.Size{Width: width, Height: height}
	return w
}

// WithMaximum sets the maximum size hint and returns w.
func (w *Widget) WithMaximum(width, height int) *Widget {
	w.Maximum = &grid.Size{Width: width, Height: height}
	return w
}

// SizeHint implements grid.Hinter.
func (w *Widget) SizeHint(kind grid.SizeKind) (grid.Size, bool) {
	var s *grid.Size
	switch kind {
	case grid.Preferred:
		s = w.Preferred
	case grid.Minimum:
		s = w.Minimum
	case grid.Maximum:
		s = w.Maximum
	}
	if s == nil {
		return grid.Size{}, false
	}
	return *s, true
}

// SetBounds implements grid.Bounded.
func (w *Widget) SetBounds(b grid.Bounds) {
	w.bounds = b
	w.laidOut = true
}

// Bounds returns the bounds from the last layout pass that produced
// geometry. ok is false if the widget has never been laid out.
func (w *Widget) Bounds() (b grid.Bounds, ok bool) {
	return w.bounds, w.laidOut
}

func (w *Widget) String() string {
	return fmt.Sprintf("%q", w.Label)
}
