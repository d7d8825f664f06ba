package widget

import (
	"testing"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
)

func demoBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(3, grid.Insets{})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []struct{ label, at string }{
		{"x", "1,1"}, {"y", "2,3"}, {"z", "2,7"}, {"w", "4,2"}, {"a", "4,5"}, {"b", "4,7"},
	} {
		if err := b.PlaceConstraint(New(p.label), p.at); err != nil {
			t.Fatalf("PlaceConstraint(%s, %s) error: %v", p.label, p.at, err)
		}
	}
	return b
}

func TestNewBoardRejectsNegativeGap(t *testing.T) {
	if _, err := NewBoard(-2, grid.Insets{}); !errors.Is(err, errors.ErrCodeInvalidGap) {
		t.Errorf("NewBoard(-2) error = %v, want %s", err, errors.ErrCodeInvalidGap)
	}
}

func TestBoardPlaceFailuresLeaveBoardUnchanged(t *testing.T) {
	b := demoBoard(t)
	x, _ := b.Find("x")

	for _, tt := range []struct {
		name string
		err  error
		code errors.Code
	}{
		{"duplicate", b.Place(x, grid.Position{Row: 5, Column: 5}), errors.ErrCodeDuplicateComponent},
		{"illegal", b.Place(New("q"), grid.Position{Row: 1, Column: 2}), errors.ErrCodeIllegalPosition},
		{"occupied", b.PlaceConstraint(New("q"), "2,3"), errors.ErrCodeSlotOccupied},
		{"format", b.PlaceConstraint(New("q"), "two,three"), errors.ErrCodeInvalidFormat},
		{"nil widget", b.Place(nil, grid.Position{Row: 5, Column: 5}), errors.ErrCodeInvalidInput},
		{"nil widget constraint", b.PlaceConstraint(nil, "5,5"), errors.ErrCodeInvalidInput},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.code) {
				t.Errorf("error = %v, want %s", tt.err, tt.code)
			}
		})
	}
	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
}

func TestBoardLayout(t *testing.T) {
	b := demoBoard(t)

	frame, ok := b.Layout(700, 500)
	if !ok {
		t.Fatal("Layout(700, 500) reported no geometry")
	}
	if len(frame.Boxes) != 6 {
		t.Fatalf("len(Boxes) = %d, want 6", len(frame.Boxes))
	}
	if frame.Gap != 3 || frame.Width != 700 || frame.Height != 500 {
		t.Errorf("frame header = %dx%d gap %d", frame.Width, frame.Height, frame.Gap)
	}

	want := map[string]grid.Bounds{
		"x": {X: 0, Y: 0, Width: 500, Height: 98},
		"y": {X: 202, Y: 101, Width: 98, Height: 98},
		"z": {X: 603, Y: 101, Width: 97, Height: 98},
	}
	for label, bounds := range want {
		box, ok := frame.Box(label)
		if !ok {
			t.Fatalf("no box for %q", label)
		}
		if box.Bounds != bounds {
			t.Errorf("box %q = %s, want %s", label, box.Bounds, bounds)
		}
		w, _ := b.Find(label)
		if got, _ := w.Bounds(); got != bounds {
			t.Errorf("widget %q bounds = %s, want %s", label, got, bounds)
		}
		if box.ID != w.ID.String() {
			t.Errorf("box %q ID = %s, want %s", label, box.ID, w.ID)
		}
	}

	if x, _ := frame.Box("x"); !x.Span {
		t.Error("box x is not marked as the span")
	}
	if first := frame.Boxes[0]; first.Label != "x" {
		t.Errorf("first box = %q, want x", first.Label)
	}
}

func TestBoardLayoutDegenerateKeepsBounds(t *testing.T) {
	b := demoBoard(t)
	if _, ok := b.Layout(700, 500); !ok {
		t.Fatal("Layout(700, 500) reported no geometry")
	}
	y, _ := b.Find("y")
	before, _ := y.Bounds()

	frame, ok := b.Layout(10, 10)
	if ok || len(frame.Boxes) != 0 {
		t.Errorf("Layout(10, 10) = %d boxes, %v; want 0, false", len(frame.Boxes), ok)
	}
	if after, _ := y.Bounds(); after != before {
		t.Errorf("bounds changed to %s on degenerate layout", after)
	}
}

func TestBoardRemove(t *testing.T) {
	b := demoBoard(t)
	y, _ := b.Find("y")

	b.Remove(y)
	b.Remove(y)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if _, ok := b.Find("y"); ok {
		t.Error("Find(y) found a removed widget")
	}
	if err := b.PlaceConstraint(New("y2"), "2,3"); err != nil {
		t.Errorf("slot (2, 3) not freed: %v", err)
	}
	if got := b.Widgets(); got[len(got)-1].Label != "y2" {
		t.Errorf("last widget = %q, want y2", got[len(got)-1].Label)
	}
}

func TestBoardSizes(t *testing.T) {
	b, err := NewBoard(10, grid.Uniform(5))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Place(New("display").WithPreferred(400, 60), grid.Span); err != nil {
		t.Fatal(err)
	}
	if err := b.Place(New("7").WithPreferred(40, 30).WithMinimum(20, 20), grid.Position{Row: 2, Column: 3}); err != nil {
		t.Fatal(err)
	}

	if got, want := b.PreferredSize(), (grid.Size{Width: 7*40 + 60 + 10, Height: 5*30 + 40 + 10}); got != want {
		t.Errorf("PreferredSize() = %s, want %s", got, want)
	}
	if got, want := b.MinimumSize(), (grid.Size{Width: 7*20 + 60 + 10, Height: 5*20 + 40 + 10}); got != want {
		t.Errorf("MinimumSize() = %s, want %s", got, want)
	}
	if got, want := b.MaximumSize(), (grid.Size{Width: 60 + 10, Height: 40 + 10}); got != want {
		t.Errorf("MaximumSize() = %s, want %s", got, want)
	}
}
