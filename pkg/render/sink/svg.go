package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/slotgrid/pkg/render"
)

const (
	svgFontFamily  = "ui-monospace, Menlo, Consolas, monospace"
	svgFontSizeMax = 18.0
	svgFontSizeMin = 6.0
	svgCornerRound = 4
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme  Theme
	title  string
	labels bool
}

// WithSVGTheme sets the colors.
func WithSVGTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithSVGTitle adds a <title> element.
func WithSVGTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithoutSVGLabels draws the boxes only.
func WithoutSVGLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG draws every box of the frame as a rounded rect with its label
// centered inside.
func RenderSVG(f render.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{theme: Light, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.theme.Background)

	for _, b := range f.Boxes {
		renderSVGBox(&buf, r.theme, b)
	}
	if r.labels {
		for _, b := range f.Boxes {
			renderSVGLabel(&buf, r.theme, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGBox(buf *bytes.Buffer, t Theme, b render.Box) {
	class := "box"
	if b.Span {
		class = "box span"
	}
	fmt.Fprintf(buf, `  <rect id="box-%s" class="%s" data-slot="%s" x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		escapeXML(b.ID), class, b.Position().Constraint(),
		b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height,
		svgCornerRound, t.fillFor(b.Span), t.Stroke)
}

func renderSVGLabel(buf *bytes.Buffer, t Theme, b render.Box) {
	if b.Label == "" || b.Bounds.Empty() {
		return
	}
	size := svgFontSize(b)
	cx := float64(b.Bounds.X) + float64(b.Bounds.Width)/2
	cy := float64(b.Bounds.Y) + float64(b.Bounds.Height)/2
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		cx, cy, svgFontFamily, size, t.Text, escapeXML(b.Label))
}

// svgFontSize fits the label into 80% of the box width assuming monospace
// glyphs 0.6em wide, clamped to a readable range.
func svgFontSize(b render.Box) float64 {
	n := max(1, len([]rune(b.Label)))
	byWidth := float64(b.Bounds.Width) * 0.8 / (float64(n) * 0.6)
	byHeight := float64(b.Bounds.Height) * 0.5
	return max(svgFontSizeMin, min(svgFontSizeMax, byWidth, byHeight))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
