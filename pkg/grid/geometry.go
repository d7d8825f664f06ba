package grid

import (
	"fmt"
	"image"
)

// Bounds is the pixel rectangle assigned to a slot. X and Y are the top-left
// corner, measured from the container's top-left corner.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the x coordinate just past the right edge.
func (b Bounds) Right() int { return b.X + b.Width }

// Bottom returns the y coordinate just past the bottom edge.
func (b Bounds) Bottom() int { return b.Y + b.Height }

// Empty reports whether the bounds cover no pixels.
func (b Bounds) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Rect converts the bounds to an image.Rectangle.
func (b Bounds) Rect() image.Rectangle { return image.Rect(b.X, b.Y, b.Right(), b.Bottom()) }

func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", b.X, b.Y, b.Width, b.Height)
}

// Placement is an occupied slot together with the bounds computed for it.
type Placement[C comparable] struct {
	Slot[C]
	Bounds Bounds
}

// Arrangement is the result of one geometry pass.
type Arrangement[C comparable] struct {
	Container Size
	Padding   Insets
	Gap       int

	// Available is the space left for cells once padding and the gaps
	// between slots are taken out.
	Available Size

	// Cell is the base cell size (Available divided by Columns and Rows).
	Cell Size

	// Remainder holds the pixels left over by the integer division. The
	// first Remainder.Width columns and Remainder.Height rows are each one
	// pixel larger than Cell.
	Remainder Size

	// Placements are in row-major order.
	Placements []Placement[C]
}

// ColumnWidth returns the width of an ordinary cell in column col.
func (a *Arrangement[C]) ColumnWidth(col int) int {
	if col <= a.Remainder.Width {
		return a.Cell.Width + 1
	}
	return a.Cell.Width
}

// RowHeight returns the height of a cell in row row.
func (a *Arrangement[C]) RowHeight(row int) int {
	if row <= a.Remainder.Height {
		return a.Cell.Height + 1
	}
	return a.Cell.Height
}

// ColumnX returns the left edge of column col. Every column before col that
// received a remainder pixel shifts it right by one.
func (a *Arrangement[C]) ColumnX(col int) int {
	return (col-1)*(a.Cell.Width+a.Gap) + min(col-1, a.Remainder.Width) + a.Padding.Left
}

// RowY returns the top edge of row row.
func (a *Arrangement[C]) RowY(row int) int {
	return (row-1)*(a.Cell.Height+a.Gap) + min(row-1, a.Remainder.Height) + a.Padding.Top
}

// SpanWidth returns the width of the spanning slot: SpanColumns ordinary
// column widths, each with its own remainder pixel, plus the gaps between
// them.
func (a *Arrangement[C]) SpanWidth() int {
	w := (SpanColumns - 1) * a.Gap
	for col := 1; col <= SpanColumns; col++ {
		w += a.ColumnWidth(col)
	}
	return w
}

// BoundsAt returns the bounds a component at p receives in this arrangement.
func (a *Arrangement[C]) BoundsAt(p Position) Bounds {
	b := Bounds{
		X:      a.ColumnX(p.Column),
		Y:      a.RowY(p.Row),
		Width:  a.ColumnWidth(p.Column),
		Height: a.RowHeight(p.Row),
	}
	if p == Span {
		b.Width = a.SpanWidth()
	}
	return b
}

// Lookup returns the placement of c, if c is part of the arrangement.
func (a *Arrangement[C]) Lookup(c C) (Placement[C], bool) {
	for _, pl := range a.Placements {
		if pl.Component == c {
			return pl, true
		}
	}
	return Placement[C]{}, false
}

// Arrange computes bounds for every occupied slot inside a container of the
// given size. It does not modify the grid.
//
// ok is false when the container leaves no room for cells once padding and
// gaps are subtracted; no arrangement is produced in that case. Transient
// zero-sized containers are normal while windows are built or resized, so
// this is not an error.
func (g *Grid[C]) Arrange(container Size, pad Insets) (arr Arrangement[C], ok bool) {
	avail := Size{
		Width:  max(0, container.Width-pad.Horizontal()-(Columns-1)*g.gap),
		Height: max(0, container.Height-pad.Vertical()-(Rows-1)*g.gap),
	}
	if avail.Width == 0 || avail.Height == 0 {
		return Arrangement[C]{}, false
	}

	cell := Size{Width: avail.Width / Columns, Height: avail.Height / Rows}
	arr = Arrangement[C]{
		Container: container,
		Padding:   pad,
		Gap:       g.gap,
		Available: avail,
		Cell:      cell,
		Remainder: Size{
			Width:  avail.Width - cell.Width*Columns,
			Height: avail.Height - cell.Height*Rows,
		},
	}

	slots := g.Slots()
	arr.Placements = make([]Placement[C], len(slots))
	for i, s := range slots {
		arr.Placements[i] = Placement[C]{Slot: s, Bounds: arr.BoundsAt(s.Position)}
	}
	return arr, true
}

// Sink receives the bounds of each occupied slot during Layout.
type Sink[C any] interface {
	SetBounds(c C, b Bounds)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc[C any] func(c C, b Bounds)

// SetBounds calls f(c, b).
func (f SinkFunc[C]) SetBounds(c C, b Bounds) { f(c, b) }

// Bounded is implemented by components that store their own bounds.
type Bounded interface {
	SetBounds(b Bounds)
}

// Self returns a Sink that hands each component its own bounds.
func Self[C Bounded]() Sink[C] {
	return SinkFunc[C](func(c C, b Bounds) { c.SetBounds(b) })
}

// Layout arranges the grid in a container of the given size and sends
// every component's bounds to sink, in row-major order. It reports whether
// any geometry was produced; when it was not, sink is not called and bounds
// from earlier passes are left as they were.
func (g *Grid[C]) Layout(container Size, pad Insets, sink Sink[C]) bool {
	arr, ok := g.Arrange(container, pad)
	if !ok {
		return false
	}
	for _, pl := range arr.Placements {
		sink.SetBounds(pl.Component, pl.Bounds)
	}
	return true
}
