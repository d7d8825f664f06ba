package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slotgrid/pkg/render"
)

// Pixel size of one terminal character when no explicit cell count is set.
const (
	textCellWidth  = 8
	textCellHeight = 16
)

// TextOption configures text rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	cols, rows int
	theme      *Theme
}

// WithCells fits the frame into exactly cols×rows characters.
func WithCells(cols, rows int) TextOption {
	return func(r *textRenderer) { r.cols, r.rows = cols, rows }
}

// WithTextTheme colors borders and labels with lipgloss. Without it the
// output is plain text.
func WithTextTheme(t Theme) TextOption { return func(r *textRenderer) { r.theme = &t } }

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellBorder
	cellSpan
	cellLabel
)

type canvas struct {
	cols, rows int
	runes      [][]rune
	kinds      [][]cellKind
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows}
	c.runes = make([][]rune, rows)
	c.kinds = make([][]cellKind, rows)
	for y := range rows {
		c.runes[y] = []rune(strings.Repeat(" ", cols))
		c.kinds[y] = make([]cellKind, cols)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = k
}

type boxRunes struct{ tl, tr, bl, br, h, v rune }

var (
	singleLine = boxRunes{'┌', '┐', '└', '┘', '─', '│'}
	doubleLine = boxRunes{'╔', '╗', '╚', '╝', '═', '║'}
)

// RenderText draws the frame with box-drawing characters. The span box uses
// double lines. Boxes that shrink below 2×2 characters are filled with '▪'.
// Trailing spaces are trimmed from every line.
func RenderText(f render.Frame, opts ...TextOption) []byte {
	r := textRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var sx, sy float64
	if r.cols > 0 && r.rows > 0 && f.Width > 0 && f.Height > 0 {
		sx = float64(r.cols) / float64(f.Width)
		sy = float64(r.rows) / float64(f.Height)
	} else {
		sx, sy = 1.0/textCellWidth, 1.0/textCellHeight
	}
	scaled := f.Scale(sx, sy)
	if r.cols > 0 && r.rows > 0 {
		scaled.Width, scaled.Height = r.cols, r.rows
	}

	c := newCanvas(max(0, scaled.Width), max(0, scaled.Height))
	for _, b := range scaled.Boxes {
		drawTextBox(c, b)
	}
	return c.bytes(r.theme)
}

func drawTextBox(c *canvas, b render.Box) {
	x0, y0 := b.Bounds.X, b.Bounds.Y
	x1, y1 := b.Bounds.Right()-1, b.Bounds.Bottom()-1
	if x1 < x0 || y1 < y0 {
		return
	}

	kind, lines := cellBorder, singleLine
	if b.Span {
		kind, lines = cellSpan, doubleLine
	}

	if x1 == x0 || y1 == y0 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.set(x, y, '▪', kind)
			}
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, lines.h, kind)
		c.set(x, y1, lines.h, kind)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, lines.v, kind)
		c.set(x1, y, lines.v, kind)
	}
	c.set(x0, y0, lines.tl, kind)
	c.set(x1, y0, lines.tr, kind)
	c.set(x0, y1, lines.bl, kind)
	c.set(x1, y1, lines.br, kind)

	inner := x1 - x0 - 1
	if y1-y0 < 2 || inner < 1 {
		return
	}
	label := truncateRunes(b.Label, inner)
	x := x0 + 1 + (inner-len(label))/2
	y := y0 + (y1-y0)/2
	for i, r := range label {
		c.set(x+i, y, r, cellLabel)
	}
}

// truncateRunes shortens s to at most n runes, marking the cut with '…'.
func truncateRunes(s string, n int) []rune {
	runes := []rune(s)
	if len(runes) <= n {
		return runes
	}
	if n == 1 {
		return runes[:1]
	}
	return append(runes[:n-1:n-1], '…')
}

func (c *canvas) bytes(theme *Theme) []byte {
	var styles map[cellKind]lipgloss.Style
	if theme != nil {
		styles = map[cellKind]lipgloss.Style{
			cellBorder: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Stroke)),
			cellSpan:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Stroke)).Bold(true),
			cellLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)).Bold(true),
		}
	}

	var sb strings.Builder
	for y := range c.rows {
		line := c.runes[y]
		end := len(line)
		for end > 0 && line[end-1] == ' ' {
			end--
		}
		if styles == nil {
			sb.WriteString(string(line[:end]))
			sb.WriteByte('\n')
			continue
		}
		for start := 0; start < end; {
			k := c.kinds[y][start]
			stop := start + 1
			for stop < end && c.kinds[y][stop] == k {
				stop++
			}
			run := string(line[start:stop])
			if s, ok := styles[k]; ok {
				run = s.Render(run)
			}
			sb.WriteString(run)
			start = stop
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
