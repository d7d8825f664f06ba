package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
)

func TestRenderText(t *testing.T) {
	tests := []struct {
		name  string
		frame render.Frame
		opts  []TextOption
		want  string
	}{
		{
			name: "span box scaled to cells",
			frame: render.Frame{Width: 16, Height: 8, Boxes: []render.Box{
				{Label: "ab", Row: 1, Column: 1, Span: true, Bounds: grid.Bounds{Width: 16, Height: 8}},
			}},
			opts: []TextOption{WithCells(8, 4)},
			want: "╔══════╗\n" +
				"║  ab  ║\n" +
				"║      ║\n" +
				"╚══════╝\n",
		},
		{
			name: "label truncated",
			frame: render.Frame{Width: 5 * textCellWidth, Height: 3 * textCellHeight, Boxes: []render.Box{
				{Label: "hello", Row: 2, Column: 1, Bounds: grid.Bounds{Width: 5 * textCellWidth, Height: 3 * textCellHeight}},
			}},
			want: "┌───┐\n" +
				"│he…│\n" +
				"└───┘\n",
		},
		{
			name: "tiny box filled",
			frame: render.Frame{Width: 4, Height: 2, Boxes: []render.Box{
				{Label: "x", Row: 2, Column: 2, Bounds: grid.Bounds{X: 1, Width: 2, Height: 1}},
			}},
			opts: []TextOption{WithCells(4, 2)},
			want: " ▪▪\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(RenderText(tt.frame, tt.opts...)); got != tt.want {
				t.Errorf("RenderText() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderTextDemo(t *testing.T) {
	out := string(RenderText(demoFrame(t), WithCells(70, 25)))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 25 {
		t.Fatalf("line count = %d, want 25", len(lines))
	}
	if !strings.HasPrefix(lines[0], "╔") {
		t.Errorf("first line = %q, want span border", lines[0])
	}
	for _, label := range []string{"x", "y", "z"} {
		if !strings.Contains(out, label) {
			t.Errorf("label %q missing", label)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 4, "abc…"},
		{"abc", 1, "a"},
		{"ünïcode", 3, "ün…"},
	}
	for _, tt := range tests {
		if got := string(truncateRunes(tt.in, tt.n)); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
