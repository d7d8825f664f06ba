package pipeline

import (
	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// Layout builds a board from the document and lays it out in the container
// chosen by opts. A container too small to hold any cells fails with
// INVALID_SIZE since there would be nothing to render.
func Layout(doc *config.Document, opts Options) (*widget.Board, render.Frame, error) {
	board, err := doc.Build()
	if err != nil {
		return nil, render.Frame{}, err
	}

	width, height := opts.Container(doc)
	frame, ok := board.Layout(width, height)
	if !ok {
		return board, frame, errors.New(errors.ErrCodeInvalidSize,
			"container %dx%d leaves no room for cells (gap %d, padding %+v)", width, height, doc.Gap, doc.Padding)
	}
	return board, frame, nil
}
