package pipeline

import (
	"strings"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/preset"
)

// Load resolves a source to a grid document. Sources starting with
// [PresetPrefix] name a built-in preset; anything else is a file path.
func Load(source string) (*config.Document, error) {
	if name, ok := strings.CutPrefix(source, PresetPrefix); ok {
		p, err := preset.Get(name)
		if err != nil {
			return nil, err
		}
		return p.Document(), nil
	}
	if source == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "source is required (a document path or %s<name>)", PresetPrefix)
	}
	return config.Load(source)
}
