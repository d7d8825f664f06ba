package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
)

const tomlDoc = `
name = "demo"
gap = 3

[[components]]
label = "x"
at = "1,1"

[[components]]
label = "y"
at = "2,3"
preferred = { width = 40, height = 30 }
`

const yamlDoc = `
name: demo
gap: 3
padding: {top: 1, left: 2, bottom: 3, right: 4}
components:
  - label: x
    at: "1,1"
  - label: y
    at: "2,3"
    preferred: {width: 40, height: 30}
`

const jsonDoc = `{
  "name": "demo",
  "gap": 3,
  "width": 320,
  "height": 240,
  "components": [
    {"label": "x", "at": "1,1"},
    {"label": "y", "at": "2,3", "preferred": {"width": 40, "height": 30}}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantSize   grid.Size
		wantInsets grid.Insets
	}{
		{"toml", "grid.toml", tomlDoc, grid.Size{Width: DefaultWidth, Height: DefaultHeight}, grid.Insets{}},
		{"yaml", "grid.yaml", yamlDoc, grid.Size{Width: DefaultWidth, Height: DefaultHeight}, grid.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}},
		{"yml", "grid.YML", yamlDoc, grid.Size{Width: DefaultWidth, Height: DefaultHeight}, grid.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}},
		{"json", "grid.json", jsonDoc, grid.Size{Width: 320, Height: 240}, grid.Insets{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if doc.Name != "demo" || doc.Gap != 3 {
				t.Errorf("Name/Gap = %q/%d, want demo/3", doc.Name, doc.Gap)
			}
			if got := (grid.Size{Width: doc.Width, Height: doc.Height}); got != tt.wantSize {
				t.Errorf("container = %s, want %s", got, tt.wantSize)
			}
			if doc.Padding != tt.wantInsets {
				t.Errorf("Padding = %+v, want %+v", doc.Padding, tt.wantInsets)
			}
			if len(doc.Components) != 2 {
				t.Fatalf("len(Components) = %d, want 2", len(doc.Components))
			}
			y := doc.Components[1]
			if y.At != "2,3" || y.Preferred == nil || *y.Preferred != (grid.Size{Width: 40, Height: 30}) {
				t.Errorf("component y = %+v", y)
			}
			if y.Minimum != nil {
				t.Error("unset minimum hint decoded as non-nil")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.Code
	}{
		{"unknown extension", "grid.ini", "gap=1", errors.ErrCodeUnsupported},
		{"bad toml", "grid.toml", "gap = [", errors.ErrCodeInvalidConfig},
		{"bad yaml", "grid.yaml", "gap: [1", errors.ErrCodeInvalidConfig},
		{"unknown json field", "grid.json", `{"gapp": 1}`, errors.ErrCodeInvalidConfig},
		{"negative gap", "grid.toml", "gap = -1", errors.ErrCodeInvalidConfig},
		{"negative padding", "grid.yaml", "padding: {left: -2}", errors.ErrCodeInvalidConfig},
		{"negative container", "grid.json", `{"width": -5}`, errors.ErrCodeInvalidConfig},
		{"empty label", "grid.toml", "[[components]]\nlabel = \" \"\nat = \"2,2\"", errors.ErrCodeInvalidConfig},
		{"duplicate label", "grid.toml", "[[components]]\nlabel = \"a\"\nat = \"2,2\"\n[[components]]\nlabel = \"a\"\nat = \"2,3\"", errors.ErrCodeInvalidConfig},
		{"negative hint", "grid.yaml", "components:\n  - {label: a, at: '2,2', minimum: {width: -1, height: 0}}", errors.ErrCodeInvalidConfig},
		{"unknown theme", "grid.toml", "theme = \"neon\"", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestValidateNamesFirstNegativeHint(t *testing.T) {
	doc := &Document{Components: []Component{{
		Label:     "a",
		At:        "2,2",
		Preferred: &grid.Size{Width: -1},
		Minimum:   &grid.Size{Width: -1},
		Maximum:   &grid.Size{Height: -1},
	}}}
	for i := 0; i < 10; i++ {
		err := doc.Validate()
		if !errors.Is(err, errors.ErrCodeInvalidConfig) || !strings.Contains(err.Error(), "preferred size") {
			t.Fatalf("Validate() error = %v, want the preferred hint named", err)
		}
	}
}

func TestBuild(t *testing.T) {
	doc, err := Decode([]byte(yamlDoc), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	b, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if b.Len() != 2 || b.Gap() != 3 || b.Padding() != doc.Padding {
		t.Errorf("board = %d widgets, gap %d, padding %+v", b.Len(), b.Gap(), b.Padding())
	}
	y, ok := b.Find("y")
	if !ok {
		t.Fatal("widget y missing")
	}
	if p, _ := b.PositionOf(y); p != (grid.Position{Row: 2, Column: 3}) {
		t.Errorf("y at %s, want (2, 3)", p)
	}
	if s, ok := y.SizeHint(grid.Preferred); !ok || s.Width != 40 {
		t.Errorf("y preferred = %s, %v", s, ok)
	}
}

func TestBuildPlacementErrors(t *testing.T) {
	tests := []struct {
		at   string
		code errors.Code
	}{
		{"1,4", errors.ErrCodeIllegalPosition},
		{"9,9", errors.ErrCodeIllegalPosition},
		{"2,3", errors.ErrCodeSlotOccupied},
		{"2;3", errors.ErrCodeInvalidFormat},
		{"", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			doc := &Document{Components: []Component{{Label: "a", At: "2,3"}, {Label: "b", At: tt.at}}}
			doc.SetDefaults()
			if err := doc.Validate(); err != nil {
				t.Fatal(err)
			}
			_, err := doc.Build()
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
			if !errors.IsPlacement(err) {
				t.Errorf("IsPlacement(%v) = false", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := Decode([]byte(tomlDoc), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(orig, f)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			got, err := Decode(data, f)
			if err != nil {
				t.Fatalf("Decode() error: %v\n%s", err, data)
			}
			if got.Name != orig.Name || got.Gap != orig.Gap || len(got.Components) != len(orig.Components) {
				t.Errorf("round trip = %+v, want %+v", got, orig)
			}
			if got.Components[1].At != "2,3" || *got.Components[1].Preferred != *orig.Components[1].Preferred {
				t.Errorf("component = %+v", got.Components[1])
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"toml": FormatTOML, " YAML ": FormatYAML, "yml": FormatYAML, "json": FormatJSON} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}
