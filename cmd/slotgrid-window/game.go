package main

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// Glyph size of ebitenutil's debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// game lays the board out on every window resize and draws the last frame.
type game struct {
	doc    *config.Document
	board  *widget.Board
	theme  sink.Theme
	logger *log.Logger

	size  grid.Size
	frame render.Frame
	ok    bool
}

func newGame(doc *config.Document, theme sink.Theme, logger *log.Logger) (*game, error) {
	g := &game{doc: doc, theme: theme, logger: logger}
	if err := g.rebuild(doc.Gap); err != nil {
		return nil, err
	}
	return g, nil
}

// rebuild places the document again with a new gap and forces a layout
// pass on the next Layout call.
func (g *game) rebuild(gap int) error {
	doc := *g.doc
	doc.Gap = gap
	board, err := doc.Build()
	if err != nil {
		return err
	}
	g.board = board
	g.size = grid.Size{}
	return nil
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		return g.rebuild(g.board.Gap() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		if gap := g.board.Gap(); gap > 0 {
			return g.rebuild(gap - 1)
		}
	}
	return nil
}

// Layout runs a layout pass whenever the window size changes. A window too
// small for any cells keeps the previous frame.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := grid.Size{Width: outsideWidth, Height: outsideHeight}
	if size != g.size {
		g.size = size
		frame, ok := g.board.Layout(outsideWidth, outsideHeight)
		if ok {
			g.frame = frame
		}
		g.ok = ok
		g.logger.Debug("layout pass", "container", size, "gap", g.board.Gap(), "ok", ok)
	}
	return outsideWidth, outsideHeight
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.BackgroundColor())

	for _, b := range g.frame.Boxes {
		fill, stroke, text := g.theme.BoxColors(b.Span)
		x, y := float32(b.Bounds.X), float32(b.Bounds.Y)
		w, h := float32(b.Bounds.Width), float32(b.Bounds.Height)
		vector.FillRect(screen, x, y, w, h, fill, true)
		vector.StrokeRect(screen, x, y, w, h, 1, stroke, true)
		drawLabel(screen, b, text)
	}

	status := "+/- gap  q quit"
	if !g.ok {
		status = "window too small  " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.size.Height-glyphHeight-2)
}

// drawLabel centers the label in the box when it fits. The debug font is
// always white, so text is only used to pick a dark backing for contrast.
func drawLabel(screen *ebiten.Image, b render.Box, text color.RGBA) {
	width := len([]rune(b.Label)) * glyphWidth
	if width > b.Bounds.Width || glyphHeight > b.Bounds.Height {
		return
	}
	x := b.Bounds.X + (b.Bounds.Width-width)/2
	y := b.Bounds.Y + (b.Bounds.Height-glyphHeight)/2
	if text.R < 0x80 {
		vector.FillRect(screen, float32(x-1), float32(y), float32(width+2), glyphHeight, color.RGBA{A: 0xa0}, false)
	}
	ebitenutil.DebugPrintAt(screen, b.Label, x, y)
}
