// Package render holds the computed geometry that output sinks draw.
//
// # Overview
//
// A [Frame] is a snapshot of one layout pass: the container size, the gap
// and padding it was computed with, and one [Box] per occupied slot. Frames
// are plain data; they can be written to JSON and read back, and they carry
// no reference to the grid or the widgets they came from.
//
// Sinks in the [sink] subpackage turn a Frame into SVG, PNG, JSON or a
// character-cell drawing for terminals:
//
//	frame, ok := board.Layout(700, 500)
//	if ok {
//	    svg := sink.RenderSVG(frame)
//	}
//
// [sink]: github.com/matzehuels/slotgrid/pkg/render/sink
package render
