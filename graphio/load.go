package graphio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gatsp/core"
)

// Load picks a decoder from the file extension: ".json" or ".xml".
func Load(path string, opts ...Option) (*core.Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSONFile(path, opts...)
	case ".xml":
		g, _, err := LoadTSPLIBFile(path, opts...)
		return g, err
	default:
		return nil, fmt.Errorf("Load(%s): %w", path, ErrUnknownFormat)
	}
}
