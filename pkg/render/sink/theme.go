package sink

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
)

// Theme is a set of hex colors ("#rrggbb") shared by every renderer.
type Theme struct {
	Background string
	Fill       string
	SpanFill   string
	Stroke     string
	Text       string
}

var (
	// Light is the default theme.
	Light = Theme{
		Background: "#ffffff",
		Fill:       "#e8eef7",
		SpanFill:   "#cfe3d4",
		Stroke:     "#4a5a70",
		Text:       "#1f2933",
	}
	// Dark suits terminals and dark pages.
	Dark = Theme{
		Background: "#1e1e2e",
		Fill:       "#313244",
		SpanFill:   "#45475a",
		Stroke:     "#89b4fa",
		Text:       "#cdd6f4",
	}
)

var themes = map[string]Theme{
	"light": Light,
	"dark":  Dark,
}

// Themes returns the names of the built-in themes, sorted.
func Themes() []string {
	return slices.Sorted(maps.Keys(themes))
}

// LookupTheme returns the built-in theme with the given name. The empty name
// selects [Light].
func LookupTheme(name string) (Theme, bool) {
	if name == "" {
		return Light, true
	}
	t, ok := themes[name]
	return t, ok
}

func (t Theme) fillFor(span bool) string {
	if span {
		return t.SpanFill
	}
	return t.Fill
}

// BackgroundColor returns the parsed background color.
func (t Theme) BackgroundColor() color.RGBA { return parseHex(t.Background) }

// BoxColors returns the parsed fill, stroke and text colors for a box.
func (t Theme) BoxColors(span bool) (fill, stroke, text color.RGBA) {
	return parseHex(t.fillFor(span)), parseHex(t.Stroke), parseHex(t.Text)
}

// parseHex converts "#rrggbb" to an opaque color. Malformed input yields
// black so a bad theme still produces a readable image.
func parseHex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
