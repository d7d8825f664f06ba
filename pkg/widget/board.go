package widget

import (
	"slices"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
)

var errNilWidget = errors.New(errors.ErrCodeInvalidInput, "cannot place a nil widget")

// Board is a grid of widgets with fixed padding. It keeps the widgets in the
// order they were placed so that listings are stable.
type Board struct {
	grid    *grid.Grid[*Widget]
	padding grid.Insets
	widgets []*Widget
}

// NewBoard returns an empty board. A negative gap fails with INVALID_GAP.
func NewBoard(gap int, padding grid.Insets) (*Board, error) {
	g, err := grid.New[*Widget](gap)
	if err != nil {
		return nil, err
	}
	return &Board{grid: g, padding: padding}, nil
}

// Grid exposes the underlying grid.
func (b *Board) Grid() *grid.Grid[*Widget] { return b.grid }

// Gap returns the spacing between slots.
func (b *Board) Gap() int { return b.grid.Gap() }

// Padding returns the board padding.
func (b *Board) Padding() grid.Insets { return b.padding }

// Len returns the number of placed widgets.
func (b *Board) Len() int { return len(b.widgets) }

// Widgets returns the placed widgets in placement order.
func (b *Board) Widgets() []*Widget { return slices.Clone(b.widgets) }

// Place puts w at p. Errors are the grid's placement errors.
func (b *Board) Place(w *Widget, p grid.Position) error {
	if w == nil {
		return errNilWidget
	}
	if err := b.grid.Add(w, p); err != nil {
		return err
	}
	b.widgets = append(b.widgets, w)
	return nil
}

// PlaceConstraint puts w at the position described by a "row,column" string.
func (b *Board) PlaceConstraint(w *Widget, constraint string) error {
	if w == nil {
		return errNilWidget
	}
	if err := b.grid.AddConstraint(w, constraint); err != nil {
		return err
	}
	b.widgets = append(b.widgets, w)
	return nil
}

// Remove takes w off the board. Removing an absent widget does nothing.
func (b *Board) Remove(w *Widget) {
	b.grid.Remove(w)
	b.widgets = slices.DeleteFunc(b.widgets, func(x *Widget) bool { return x == w })
}

// Find returns the first widget with the given label.
func (b *Board) Find(label string) (*Widget, bool) {
	for _, w := range b.widgets {
		if w.Label == label {
			return w, true
		}
	}
	return nil, false
}

// PositionOf returns the position of w.
func (b *Board) PositionOf(w *Widget) (grid.Position, bool) {
	return b.grid.PositionOf(w)
}

// PreferredSize returns the container size that fits every widget's
// preferred size.
func (b *Board) PreferredSize() grid.Size {
	return b.grid.PreferredSize(grid.HintsOf[*Widget](), b.padding)
}

// MinimumSize returns the container size that fits every widget's minimum
// size.
func (b *Board) MinimumSize() grid.Size {
	return b.grid.MinimumSize(grid.HintsOf[*Widget](), b.padding)
}

// MaximumSize returns the container size bounded by every widget's maximum
// size.
func (b *Board) MaximumSize() grid.Size {
	return b.grid.MaximumSize(grid.HintsOf[*Widget](), b.padding)
}

// Layout lays the board out in a width×height container. Every widget
// receives its bounds, and the pass is returned as a frame. ok is false when
// the container is too small to hold any cells; widgets then keep their
// previous bounds and the frame has no boxes.
func (b *Board) Layout(width, height int) (frame render.Frame, ok bool) {
	frame = render.Frame{
		Width:   width,
		Height:  height,
		Gap:     b.grid.Gap(),
		Padding: b.padding,
	}

	sink := grid.SinkFunc[*Widget](func(w *Widget, bounds grid.Bounds) {
		w.SetBounds(bounds)
		p, _ := b.grid.PositionOf(w)
		frame.Boxes = append(frame.Boxes, render.Box{
			ID:     w.ID.String(),
			Label:  w.Label,
			Row:    p.Row,
			Column: p.Column,
			Span:   p.IsSpan(),
			Bounds: bounds,
		})
	})

	ok = b.grid.Layout(grid.Size{Width: width, Height: height}, b.padding, sink)
	return frame, ok
}
