package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
)

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(demoFrame(t), WithSVGTitle("demo")))

	for _, want := range []string{
		`viewBox="0 0 700 500"`,
		`<title>demo</title>`,
		`class="box span" data-slot="1,1" x="0" y="0" width="500" height="98"`,
		`data-slot="2,7" x="603" y="101" width="97" height="98"`,
		`>y</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if got := strings.Count(svg, "<rect "); got != 4 {
		t.Errorf("rect count = %d, want 4 (background + 3 boxes)", got)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not terminated")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	f := render.Frame{Width: 100, Height: 50, Boxes: []render.Box{{
		ID: "1", Label: "a<b&c", Row: 2, Column: 1,
		Bounds: grid.Bounds{Width: 100, Height: 50},
	}}}

	svg := string(RenderSVG(f, WithSVGTheme(Dark)))
	if !strings.Contains(svg, "a&lt;b&amp;c") {
		t.Error("label not escaped")
	}
	if !strings.Contains(svg, Dark.Background) || strings.Contains(svg, Light.Fill) {
		t.Error("dark theme not applied")
	}

	if svg := string(RenderSVG(f, WithoutSVGLabels())); strings.Contains(svg, "<text") {
		t.Error("labels drawn despite WithoutSVGLabels")
	}
}

func TestSVGFontSize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		w, h  int
		want  float64
	}{
		{"capped", "x", 500, 500, svgFontSizeMax},
		{"floor", "a very long label", 10, 10, svgFontSizeMin},
		{"height bound", "ab", 400, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := render.Box{Label: tt.label, Bounds: grid.Bounds{Width: tt.w, Height: tt.h}}
			if got := svgFontSize(b); got != tt.want {
				t.Errorf("svgFontSize() = %v, want %v", got, tt.want)
			}
		})
	}
}
