package grid

import "fmt"

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Insets is the padding between the container edge and the grid.
type Insets struct {
	Top    int `json:"top" toml:"top" yaml:"top"`
	Left   int `json:"left" toml:"left" yaml:"left"`
	Bottom int `json:"bottom" toml:"bottom" yaml:"bottom"`
	Right  int `json:"right" toml:"right" yaml:"right"`
}

// Uniform returns insets of n on every side.
func Uniform(n int) Insets { return Insets{Top: n, Left: n, Bottom: n, Right: n} }

// Horizontal returns Left + Right.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() int { return in.Top + in.Bottom }

// SizeKind selects which size hint a component is asked for.
type SizeKind int

const (
	Preferred SizeKind = iota
	Minimum
	Maximum
)

func (k SizeKind) String() string {
	switch k {
	case Preferred:
		return "preferred"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	}
	return fmt.Sprintf("SizeKind(%d)", int(k))
}

// SizeFunc returns one size hint for a component. ok is false when the
// component does not specify one; such components are skipped.
type SizeFunc[C any] func(c C) (s Size, ok bool)

// Hints answers every kind of size hint for a component.
type Hints[C any] func(c C, kind SizeKind) (Size, bool)

// Select narrows h to a single kind.
func (h Hints[C]) Select(kind SizeKind) SizeFunc[C] {
	return func(c C) (Size, bool) { return h(c, kind) }
}

// Hinter is implemented by components that report their own size hints.
type Hinter interface {
	SizeHint(kind SizeKind) (Size, bool)
}

// HintsOf returns Hints that ask each component directly.
func HintsOf[C Hinter]() Hints[C] {
	return func(c C, kind SizeKind) (Size, bool) { return c.SizeHint(kind) }
}

// AggregateSize returns the container size that gives every ordinary cell
// the largest hint reported by sel:
//
//	width  = Columns*maxWidth  + (Columns-1)*gap + pad.Left + pad.Right
//	height = Rows*maxHeight    + (Rows-1)*gap    + pad.Top  + pad.Bottom
//
// The spanning slot does not take part in the maximum.
func (g *Grid[C]) AggregateSize(sel SizeFunc[C], pad Insets) Size {
	var maxCell Size
	for p, c := range g.slots {
		if p == Span {
			continue
		}
		s, ok := sel(c)
		if !ok {
			continue
		}
		maxCell.Width = max(maxCell.Width, s.Width)
		maxCell.Height = max(maxCell.Height, s.Height)
	}

	return Size{
		Width:  Columns*maxCell.Width + (Columns-1)*g.gap + pad.Horizontal(),
		Height: Rows*maxCell.Height + (Rows-1)*g.gap + pad.Vertical(),
	}
}

// PreferredSize is AggregateSize over preferred hints.
func (g *Grid[C]) PreferredSize(h Hints[C], pad Insets) Size {
	return g.AggregateSize(h.Select(Preferred), pad)
}

// MinimumSize is AggregateSize over minimum hints.
func (g *Grid[C]) MinimumSize(h Hints[C], pad Insets) Size {
	return g.AggregateSize(h.Select(Minimum), pad)
}

// MaximumSize is AggregateSize over maximum hints.
func (g *Grid[C]) MaximumSize(h Hints[C], pad Insets) Size {
	return g.AggregateSize(h.Select(Maximum), pad)
}
