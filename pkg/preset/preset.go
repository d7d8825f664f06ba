// Package preset provides built-in grid documents.
package preset

import (
	"maps"
	"slices"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
)

// Preset is a named document generator.
type Preset struct {
	Name        string
	Description string
	build       func() *config.Document
}

// Document returns a fresh copy of the preset's document.
func (p Preset) Document() *config.Document {
	doc := p.build()
	doc.Name = p.Name
	doc.SetDefaults()
	return doc
}

var presets = map[string]Preset{
	"calculator": {
		Name:        "calculator",
		Description: "Scientific calculator keypad with a five-column display",
		build:       calculator,
	},
	"demo": {
		Name:        "demo",
		Description: "Six labels scattered over the grid, gap 3, 700x500",
		build:       demo,
	},
}

// Names returns the preset names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(presets))
}

// All returns every preset, sorted by name.
func All() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, name := range Names() {
		out = append(out, presets[name])
	}
	return out
}

// Get returns the named preset. Unknown names fail with NOT_FOUND.
func Get(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeNotFound, "unknown preset %q (available: %v)", name, Names())
	}
	return p, nil
}

var (
	keySize    = grid.Size{Width: 48, Height: 36}
	keyMinimum = grid.Size{Width: 24, Height: 20}
)

func key(label, at string) config.Component {
	pref, minimum := keySize, keyMinimum
	return config.Component{Label: label, At: at, Preferred: &pref, Minimum: &minimum}
}

// calculator fills all 31 slots: the display spans the top row, functions
// run down columns 1 and 2, operators down column 6 and memory keys down
// column 7.
func calculator() *config.Document {
	return &config.Document{
		Gap:     10,
		Padding: grid.Uniform(8),
		Width:   412,
		Height:  236,
		Components: []config.Component{
			{Label: "display", At: "1,1"},
			key("=", "1,6"), key("clr", "1,7"),

			key("1/x", "2,1"), key("sin", "2,2"), key("7", "2,3"), key("8", "2,4"), key("9", "2,5"), key("/", "2,6"), key("res", "2,7"),
			key("log", "3,1"), key("cos", "3,2"), key("4", "3,3"), key("5", "3,4"), key("6", "3,5"), key("*", "3,6"), key("push", "3,7"),
			key("ln", "4,1"), key("tan", "4,2"), key("1", "4,3"), key("2", "4,4"), key("3", "4,5"), key("-", "4,6"), key("pop", "4,7"),
			key("x^n", "5,1"), key("ctg", "5,2"), key("0", "5,3"), key("+/-", "5,4"), key(".", "5,5"), key("+", "5,6"), key("Inv", "5,7"),
		},
	}
}

func demo() *config.Document {
	return &config.Document{
		Gap:    3,
		Width:  700,
		Height: 500,
		Components: []config.Component{
			{Label: "x", At: "1,1"},
			{Label: "y", At: "2,3"},
			{Label: "z", At: "2,7"},
			{Label: "w", At: "4,2"},
			{Label: "a", At: "4,5"},
			{Label: "b", At: "4,7"},
		},
	}
}
