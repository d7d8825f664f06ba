package grid

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/slotgrid/pkg/errors"
)

// Grid holds the occupancy of the slot grid: at most one component per
// position and at most one position per component.
//
// C is the caller's component handle. The grid only compares handles for
// identity; it never inspects them. Pointer types are the usual choice.
type Grid[C comparable] struct {
	gap   int
	slots map[Position]C
}

// Slot is an occupied position and its component.
type Slot[C comparable] struct {
	Position  Position
	Component C
}

// PlacementError reports a rejected Add or AddConstraint. It unwraps to the
// coded *errors.Error, so errors.Is(err, errors.ErrCodeSlotOccupied) and
// friends work on it directly.
type PlacementError struct {
	Constraint string   // raw constraint, set by AddConstraint
	Position   Position // offending position; zero when the constraint did not parse
	Component  any      // component that was being placed
	Existing   any      // occupant of Position for SLOT_OCCUPIED
	Err        *errors.Error
}

// Error implements the error interface.
func (e *PlacementError) Error() string { return e.Err.Error() }

// Unwrap returns the coded error.
func (e *PlacementError) Unwrap() error { return e.Err }

// Code returns the error code of the placement failure.
func (e *PlacementError) Code() errors.Code { return e.Err.Code }

// New returns an empty grid with gap pixels between adjacent slots, both
// horizontally and vertically. A negative gap fails with INVALID_GAP.
func New[C comparable](gap int) (*Grid[C], error) {
	if gap < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGap, "gap between rows and columns must not be negative, got %d", gap)
	}
	return &Grid[C]{
		gap:   gap,
		slots: make(map[Position]C, MaxSlots),
	}, nil
}

// Gap returns the spacing between adjacent slots.
func (g *Grid[C]) Gap() int { return g.gap }

// Len returns the number of occupied slots.
func (g *Grid[C]) Len() int { return len(g.slots) }

// Add places c at p. The checks run in this order, each with its own code:
//
//  1. c already occupies a slot: DUPLICATE_COMPONENT
//  2. p is not legal (see IsLegal): ILLEGAL_POSITION
//  3. p holds another component: SLOT_OCCUPIED
//
// On failure the grid is unchanged.
func (g *Grid[C]) Add(c C, p Position) error {
	if at, ok := g.PositionOf(c); ok {
		return &PlacementError{
			Position:  p,
			Component: c,
			Err:       errors.New(errors.ErrCodeDuplicateComponent, "component %v is already placed at %s", c, at),
		}
	}
	if !IsLegal(p) {
		return &PlacementError{
			Position:  p,
			Component: c,
			Err:       errors.New(errors.ErrCodeIllegalPosition, "position %s is not supported", p),
		}
	}
	if existing, ok := g.slots[p]; ok {
		return &PlacementError{
			Position:  p,
			Component: c,
			Existing:  existing,
			Err:       errors.New(errors.ErrCodeSlotOccupied, "position %s is already occupied by %v", p, existing),
		}
	}

	g.slots[p] = c
	return nil
}

// AddConstraint parses constraint with ParsePosition and places c there.
// A malformed constraint fails with INVALID_FORMAT before any other check.
func (g *Grid[C]) AddConstraint(c C, constraint string) error {
	p, perr := parsePosition(constraint)
	if perr != nil {
		return &PlacementError{Constraint: constraint, Component: c, Err: perr}
	}
	if err := g.Add(c, p); err != nil {
		if pe, ok := err.(*PlacementError); ok {
			pe.Constraint = constraint
		}
		return err
	}
	return nil
}

// Remove frees the slot held by c. Removing a component that is not on the
// grid does nothing.
func (g *Grid[C]) Remove(c C) {
	if p, ok := g.PositionOf(c); ok {
		delete(g.slots, p)
	}
}

// PositionOf returns the position occupied by c.
//
// The lookup is a linear scan; the grid never holds more than MaxSlots
// entries.
func (g *Grid[C]) PositionOf(c C) (Position, bool) {
	for p, occupant := range g.slots {
		if occupant == c {
			return p, true
		}
	}
	return Position{}, false
}

// At returns the component at p, if any.
func (g *Grid[C]) At(p Position) (C, bool) {
	c, ok := g.slots[p]
	return c, ok
}

// Slots returns the occupied slots in row-major order.
func (g *Grid[C]) Slots() []Slot[C] {
	out := make([]Slot[C], 0, len(g.slots))
	for p, c := range g.slots {
		out = append(out, Slot[C]{Position: p, Component: c})
	}
	slices.SortFunc(out, func(a, b Slot[C]) int {
		return comparePositions(a.Position, b.Position)
	})
	return out
}

// String summarizes the grid for debugging.
func (g *Grid[C]) String() string {
	return fmt.Sprintf("grid(%dx%d, gap=%d, occupied=%d)", Rows, Columns, g.gap, len(g.slots))
}

func comparePositions(a, b Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Column, b.Column)
}
