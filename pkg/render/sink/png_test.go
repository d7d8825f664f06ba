package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
)

func TestRenderPNG(t *testing.T) {
	f := render.Frame{Width: 60, Height: 40, Boxes: []render.Box{
		{Row: 1, Column: 1, Span: true, Bounds: grid.Bounds{X: 0, Y: 0, Width: 30, Height: 20}},
		{Row: 2, Column: 1, Label: "ok", Bounds: grid.Bounds{X: 0, Y: 20, Width: 60, Height: 20}},
	}}

	data, err := RenderPNG(f)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("image = %v, want 60x40", b)
	}

	checks := []struct {
		name string
		x, y int
		want string
	}{
		{"background", 50, 5, Light.Background},
		{"span fill", 10, 10, Light.SpanFill},
		{"span stroke", 0, 0, Light.Stroke},
		{"box fill", 2, 22, Light.Fill},
	}
	for _, c := range checks {
		r, g, b, _ := img.At(c.x, c.y).RGBA()
		want := parseHex(c.want)
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
			t.Errorf("%s pixel (%d,%d) = %02x%02x%02x, want %s", c.name, c.x, c.y, r>>8, g>>8, b>>8, c.want)
		}
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(render.Frame{Width: 20, Height: 10}, WithScale(2), WithPNGTheme(Dark))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("scaled image = %dx%d, want 40x20", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGThumbnail(t *testing.T) {
	tests := []struct {
		name       string
		w, h, side int
		wantW      int
		wantH      int
	}{
		{"landscape", 200, 100, 50, 50, 25},
		{"portrait", 100, 400, 100, 25, 100},
		{"already small", 40, 30, 64, 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(render.Frame{Width: tt.w, Height: tt.h}, WithThumbnail(tt.side))
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Errorf("thumbnail = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNGInvalidSize(t *testing.T) {
	for _, f := range []render.Frame{{}, {Width: 10}, {Width: maxPNGSide + 1, Height: 1}} {
		if _, err := RenderPNG(f); !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("RenderPNG(%dx%d) error = %v, want %s", f.Width, f.Height, err, errors.ErrCodeInvalidSize)
		}
	}
}
