package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
)

// maxPNGSide caps either side of the output image after scaling.
const maxPNGSide = 16384

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme Theme
	scale float64
	thumb int
}

// WithScale sets the scale factor (default 1). Labels stay at the bitmap
// font's native size.
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithThumbnail shrinks the image with Lanczos resampling so that neither
// side exceeds maxSide, keeping the aspect ratio. Smaller images are left
// alone.
func WithThumbnail(maxSide int) PNGOption { return func(r *pngRenderer) { r.thumb = maxSide } }

// WithPNGTheme sets the colors.
func WithPNGTheme(t Theme) PNGOption { return func(r *pngRenderer) { r.theme = t } }

// RenderPNG rasterizes the frame. It fails with INVALID_SIZE when the scaled
// image would be empty or too large.
func RenderPNG(f render.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{theme: Light, scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale != 1 {
		f = f.Scale(r.scale, r.scale)
	}
	if f.Width <= 0 || f.Height <= 0 || f.Width > maxPNGSide || f.Height > maxPNGSide {
		return nil, errors.New(errors.ErrCodeInvalidSize, "cannot rasterize a %dx%d image", f.Width, f.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: r.theme.BackgroundColor()}, image.Point{}, draw.Src)

	for _, b := range f.Boxes {
		rect := b.Bounds.Rect().Intersect(img.Bounds())
		if rect.Empty() {
			continue
		}
		fill, stroke, text := r.theme.BoxColors(b.Span)
		draw.Draw(img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
		strokeRect(img, rect, stroke)
		drawLabel(img, b.Bounds, b.Label, text)
	}

	var out image.Image = img
	if r.thumb > 0 && (f.Width > r.thumb || f.Height > r.thumb) {
		out = imaging.Fit(img, r.thumb, r.thumb, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// drawLabel centers the label in b, dropping trailing runes until it fits.
// Labels that cannot fit even one glyph are skipped.
func drawLabel(img *image.RGBA, b grid.Bounds, label string, c color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}

	runes := []rune(label)
	for len(runes) > 0 && d.MeasureString(string(runes)).Ceil() > b.Width-2 {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 || face.Height > b.Height {
		return
	}

	text := string(runes)
	w := d.MeasureString(text).Ceil()
	x := b.X + (b.Width-w)/2
	y := b.Y + (b.Height-face.Height)/2 + face.Ascent
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
