// Package grid arranges components on a fixed 5×7 slot grid.
//
// # Overview
//
// A [Grid] maps [Position] values to caller-owned components. It never
// creates, renders or destroys a component; it stores the association and,
// on every layout pass, hands back pixel [Bounds] for each occupied slot.
//
// The grid has [Rows] rows and [Columns] columns, both 1-indexed. The slot at
// [Span] (1,1) is special: it is drawn across [SpanColumns] columns, so the
// four slots to its right on row 1 are reserved and cannot be occupied.
//
//	row 1  [(1,1) ───────── spans 1..5 ─────────]  (1,6)  (1,7)
//	row 2   (2,1)  (2,2)  (2,3)  (2,4)  (2,5)  (2,6)  (2,7)
//	 ...
//	row 5   (5,1)  (5,2)  (5,3)  (5,4)  (5,5)  (5,6)  (5,7)
//
// # Placement
//
// Components are added with [Grid.Add] or, using the "row,column" constraint
// format, [Grid.AddConstraint]. Placement is checked in a fixed order and each
// failure is a [PlacementError] carrying one of the codes
// INVALID_FORMAT, DUPLICATE_COMPONENT, ILLEGAL_POSITION or SLOT_OCCUPIED:
//
//	g, _ := grid.New[*Button](3)
//	if err := g.AddConstraint(display, "1,1"); err != nil {
//	    return err
//	}
//
// # Geometry
//
// [Grid.Arrange] divides the space left after padding and gaps evenly between
// columns and rows using integer division. The leftover pixels go one each to
// the first columns (and rows), so the cells and gaps always add up to the
// available space exactly. [Grid.Layout] runs the same computation and
// pushes the result into a [Sink].
//
// Geometry is recomputed from scratch on every call; nothing is cached, and
// a container too small to hold the gaps produces no geometry at all.
//
// # Size Negotiation
//
// [Grid.AggregateSize] reports the container size needed to give every
// ordinary cell the largest size hint among its occupants. The spanning slot
// is left out so it never inflates ordinary cells. The preferred, minimum
// and maximum variants differ only in the [SizeKind] they sample.
//
// A Grid is not safe for concurrent use.
package grid
