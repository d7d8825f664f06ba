// Package config loads grid documents: a gap, padding, container size and a
// list of labelled components pinned to "row,column" slots.
//
// Documents can be written in TOML, YAML or JSON. The format is chosen from
// the file extension:
//
//	gap = 3
//	theme = "dark"
//	width = 700
//	height = 500
//
//	[[components]]
//	label = "display"
//	at = "1,1"
//
//	[[components]]
//	label = "="
//	at = "1,6"
//	preferred = { width = 40, height = 30 }
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
	"github.com/matzehuels/slotgrid/pkg/widget"
)

// Default container size used when a document does not name one.
const (
	DefaultWidth  = 700
	DefaultHeight = 500
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported document encodings.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported document type %q (use .toml, .yaml or .json)", filepath.Ext(path))
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported document format %q", s)
}

// Document describes one grid.
type Document struct {
	Name       string      `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Gap        int         `json:"gap" toml:"gap" yaml:"gap"`
	Padding    grid.Insets `json:"padding" toml:"padding" yaml:"padding"`
	Width      int         `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height     int         `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Theme      string      `json:"theme,omitempty" toml:"theme,omitempty" yaml:"theme,omitempty"`
	Components []Component `json:"components" toml:"components" yaml:"components"`
}

// Component is one labelled widget and the slot it is pinned to.
type Component struct {
	Label     string     `json:"label" toml:"label" yaml:"label"`
	At        string     `json:"at" toml:"at" yaml:"at"`
	Preferred *grid.Size `json:"preferred,omitempty" toml:"preferred,omitempty" yaml:"preferred,omitempty"`
	Minimum   *grid.Size `json:"minimum,omitempty" toml:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *grid.Size `json:"maximum,omitempty" toml:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// Load reads, decodes, defaults and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses data in the given format, then applies defaults and
// validates the result.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported document format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s document", format)
	}

	doc.SetDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode writes the document in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported document format %q", format)
	}
	return buf.Bytes(), nil
}

// SetDefaults fills in the container size when it is missing.
func (d *Document) SetDefaults() {
	if d.Width == 0 {
		d.Width = DefaultWidth
	}
	if d.Height == 0 {
		d.Height = DefaultHeight
	}
}

// Validate checks the document without placing anything. Placement problems
// such as a reserved slot are reported by [Document.Build] with their own
// codes.
func (d *Document) Validate() error {
	if d.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "gap cannot be negative: %d", d.Gap)
	}
	if p := d.Padding; p.Top < 0 || p.Left < 0 || p.Bottom < 0 || p.Right < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding cannot be negative: %+v", p)
	}
	if err := errors.ValidateContainer(d.Width, d.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "container")
	}
	if _, ok := sink.LookupTheme(d.Theme); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown theme %q (must be one of: %s)", d.Theme, strings.Join(sink.Themes(), ", "))
	}
	if n := len(d.Components); n > grid.MaxSlots {
		return errors.New(errors.ErrCodeInvalidConfig, "%d components do not fit in %d slots", n, grid.MaxSlots)
	}

	seen := make(map[string]bool, len(d.Components))
	for i, c := range d.Components {
		if err := errors.ValidateLabel(c.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "component %d", i+1)
		}
		if seen[c.Label] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate component label %q", c.Label)
		}
		seen[c.Label] = true

		for _, h := range []struct {
			kind grid.SizeKind
			size *grid.Size
		}{{grid.Preferred, c.Preferred}, {grid.Minimum, c.Minimum}, {grid.Maximum, c.Maximum}} {
			if h.size != nil && (h.size.Width < 0 || h.size.Height < 0) {
				return errors.New(errors.ErrCodeInvalidConfig, "component %q: %s size cannot be negative", c.Label, h.kind)
			}
		}
	}
	return nil
}

// Build creates a board and places every component in document order. The
// first placement failure is returned with its grid error code intact.
func (d *Document) Build() (*widget.Board, error) {
	b, err := widget.NewBoard(d.Gap, d.Padding)
	if err != nil {
		return nil, err
	}
	for _, c := range d.Components {
		w := widget.New(c.Label)
		w.Preferred, w.Minimum, w.Maximum = c.Preferred, c.Minimum, c.Maximum
		if err := b.PlaceConstraint(w, c.At); err != nil {
			return nil, fmt.Errorf("component %q: %w", c.Label, err)
		}
	}
	return b, nil
}
