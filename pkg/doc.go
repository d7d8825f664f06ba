// Package pkg provides the core libraries for slotgrid.
//
// # Overview
//
// Slotgrid places labelled components on a fixed grid of 5 rows and 7
// columns. The slot at row 1, column 1 spans five columns, so row 1 columns
// 2 through 5 cannot be used. Given any container size the grid computes
// pixel bounds for every component, and those bounds can be rendered as SVG,
// PNG, JSON or terminal text.
//
// # Architecture
//
// The typical data flow:
//
//	TOML / YAML / JSON document, or a preset
//	         ↓
//	    [config] (decode, validate)
//	         ↓
//	    [widget] board built on [grid] (place components)
//	         ↓
//	    [grid] layout (container size → bounds)
//	         ↓
//	    [render] frame → [render/sink] (SVG, PNG, JSON, text)
//
// [pipeline] runs these stages with observability hooks, and [server]
// exposes them over HTTP with an artifact [cache].
//
// # Quick Start
//
//	g, _ := grid.New[string](3)
//	_ = g.AddConstraint("display", "1,1")
//	_ = g.AddConstraint("7", "3,1")
//
//	g.Layout(grid.Size{Width: 700, Height: 500}, grid.Insets{},
//	    grid.SinkFunc[string](func(label string, b grid.Bounds) {
//	        fmt.Println(label, b)
//	    }))
//
// # Main Packages
//
//   - [grid]: positions, placement rules, layout arithmetic and size hints
//   - [widget]: labelled components with size hints and a board to hold them
//   - [config]: grid documents in TOML, YAML and JSON
//   - [preset]: built-in documents
//   - [render], [render/sink]: frames and output formats
//   - [pipeline]: load → layout → render orchestration
//   - [server]: HTTP API
//   - [cache]: artifact caches
//   - [observability]: pipeline and HTTP hooks
//   - [errors]: coded errors shared by every package
//
// [grid]: github.com/matzehuels/slotgrid/pkg/grid
// [widget]: github.com/matzehuels/slotgrid/pkg/widget
// [config]: github.com/matzehuels/slotgrid/pkg/config
// [preset]: github.com/matzehuels/slotgrid/pkg/preset
// [render]: github.com/matzehuels/slotgrid/pkg/render
// [render/sink]: github.com/matzehuels/slotgrid/pkg/render/sink
// [pipeline]: github.com/matzehuels/slotgrid/pkg/pipeline
// [server]: github.com/matzehuels/slotgrid/pkg/server
// [cache]: github.com/matzehuels/slotgrid/pkg/cache
// [observability]: github.com/matzehuels/slotgrid/pkg/observability
// [errors]: github.com/matzehuels/slotgrid/pkg/errors
package pkg
