package grid

import "testing"

func TestAggregateSize(t *testing.T) {
	g := mustGrid(t, 2)
	hints := HintsOf[*testComp]()

	span := newComp("display").with(Preferred, 500, 80) // ignored
	a := newComp("a").with(Preferred, 30, 20).with(Minimum, 10, 10)
	b := newComp("b").with(Preferred, 40, 15).with(Maximum, 100, 90)
	c := newComp("c") // no hints at all

	for _, add := range []struct {
		c *testComp
		p Position
	}{{span, Span}, {a, Position{2, 1}}, {b, Position{3, 4}}, {c, Position{5, 7}}} {
		if err := g.Add(add.c, add.p); err != nil {
			t.Fatal(err)
		}
	}

	pad := Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}

	tests := []struct {
		name string
		got  Size
		want Size
	}{
		{
			name: "preferred",
			got:  g.PreferredSize(hints, pad),
			want: Size{Width: 7*40 + 6*2 + 6, Height: 5*20 + 4*2 + 4},
		},
		{
			name: "minimum",
			got:  g.MinimumSize(hints, pad),
			want: Size{Width: 7*10 + 6*2 + 6, Height: 5*10 + 4*2 + 4},
		},
		{
			name: "maximum",
			got:  g.MaximumSize(hints, pad),
			want: Size{Width: 7*100 + 6*2 + 6, Height: 5*90 + 4*2 + 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("size = %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestAggregateSizeEmpty(t *testing.T) {
	g := mustGrid(t, 5)
	got := g.AggregateSize(func(*testComp) (Size, bool) { return Size{}, false }, Insets{})
	want := Size{Width: 6 * 5, Height: 4 * 5}
	if got != want {
		t.Errorf("AggregateSize() on empty grid = %s, want %s", got, want)
	}
}

func TestAggregateSizeSkipsSpanOnly(t *testing.T) {
	g := mustGrid(t, 0)
	if err := g.Add(newComp("wide").with(Preferred, 999, 999), Span); err != nil {
		t.Fatal(err)
	}
	if got := g.PreferredSize(HintsOf[*testComp](), Insets{}); got != (Size{}) {
		t.Errorf("PreferredSize() = %s, want 0x0", got)
	}
}

func TestSizeKindString(t *testing.T) {
	for kind, want := range map[SizeKind]string{
		Preferred:   "preferred",
		Minimum:     "minimum",
		Maximum:     "maximum",
		SizeKind(9): "SizeKind(9)",
	} {
		if got := kind.String(); got != want {
			t.Errorf("SizeKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestInsets(t *testing.T) {
	in := Uniform(4)
	if in.Horizontal() != 8 || in.Vertical() != 8 {
		t.Errorf("Uniform(4) = %+v", in)
	}
	in = Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if in.Horizontal() != 6 || in.Vertical() != 4 {
		t.Errorf("Horizontal/Vertical = %d/%d, want 6/4", in.Horizontal(), in.Vertical())
	}
}
