package sink

import (
	"testing"

	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// demoFrame lays out the three-widget demo board in 700×500 with gap 3.
func demoFrame(t *testing.T) render.Frame {
	t.Helper()
	b, err := widget.NewBoard(3, grid.Insets{})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []struct{ label, at string }{{"x", "1,1"}, {"y", "2,3"}, {"z", "2,7"}} {
		if err := b.PlaceConstraint(widget.New(p.label), p.at); err != nil {
			t.Fatal(err)
		}
	}
	f, ok := b.Layout(700, 500)
	if !ok {
		t.Fatal("demo layout produced no geometry")
	}
	return f
}

func TestThemes(t *testing.T) {
	names := Themes()
	if len(names) != 2 || names[0] != "dark" || names[1] != "light" {
		t.Errorf("Themes() = %v", names)
	}
	if th, ok := LookupTheme(""); !ok || th != Light {
		t.Error("LookupTheme(\"\") is not Light")
	}
	if _, ok := LookupTheme("neon"); ok {
		t.Error("LookupTheme(neon) succeeded")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#ffffff", 0xff, 0xff, 0xff},
		{"#1e1e2e", 0x1e, 0x1e, 0x2e},
		{"garbage", 0, 0, 0},
	}
	for _, tt := range tests {
		c := parseHex(tt.in)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 0xff {
			t.Errorf("parseHex(%q) = %v", tt.in, c)
		}
	}
}
