package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/slotgrid/pkg/errors"
)

// Grid dimensions. These are fixed properties of the grid, not options.
const (
	Rows        = 5
	Columns     = 7
	SpanColumns = 5

	// MaxSlots is the number of legal positions: every cell except the
	// four row-1 cells covered by the spanning slot.
	MaxSlots = Rows*Columns - (SpanColumns - 1)
)

// Span is the position of the slot that is drawn across SpanColumns columns.
var Span = Position{Row: 1, Column: 1}

// Position addresses a slot by 1-indexed row and column.
// Positions are comparable and used directly as map keys.
type Position struct {
	Row    int
	Column int
}

// String formats the position as "(row, column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Constraint formats the position in the "row,column" form accepted by
// ParsePosition.
func (p Position) Constraint() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Column)
}

// IsSpan reports whether p is the spanning slot.
func (p Position) IsSpan() bool { return p == Span }

// IsLegal reports whether a component may be placed at p.
//
// A position is illegal when it lies outside Rows×Columns, or when it is one
// of the row-1 cells in columns 2..SpanColumns that the spanning slot covers.
func IsLegal(p Position) bool {
	if p.Row < 1 || p.Row > Rows || p.Column < 1 || p.Column > Columns {
		return false
	}
	if p.Row == 1 && p.Column >= 2 && p.Column <= SpanColumns {
		return false
	}
	return true
}

// LegalPositions returns every legal position in row-major order.
func LegalPositions() []Position {
	out := make([]Position, 0, MaxSlots)
	for r := 1; r <= Rows; r++ {
		for c := 1; c <= Columns; c++ {
			if p := (Position{Row: r, Column: c}); IsLegal(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// ParsePosition parses a "row,column" constraint string. Whitespace around
// the whole string and around each number is ignored, so "1,1", " 1,1" and
// " 1 , 1 " all parse to the same position. Anything other than exactly two
// comma-separated integers fails with code INVALID_FORMAT.
//
// ParsePosition does not check legality; see IsLegal.
func ParsePosition(s string) (Position, error) {
	p, err := parsePosition(s)
	if err != nil {
		return Position{}, err
	}
	return p, nil
}

func parsePosition(s string) (Position, *errors.Error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Position{}, errors.New(errors.ErrCodeInvalidFormat,
			"constraint %q must have the form \"row,column\"", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "constraint %q: invalid row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "constraint %q: invalid column", s)
	}

	return Position{Row: row, Column: col}, nil
}

// MustParsePosition is like ParsePosition but panics on error.
// It is intended for package-level tables of known-good constraints.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
