package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/katalvlaran/gatsp/core"
	"github.com/katalvlaran/gatsp/matrix"
)

// LoadJSON decodes a dict-of-dicts cost document from r.
//
// Complexity: O(V + E log E) for the deterministic insertion order.
func LoadJSON(r io.Reader, opts ...Option) (*core.Graph, error) {
	var doc map[string]map[string]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("LoadJSON: %w: %w", ErrFormat, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("LoadJSON: null document: %w", ErrFormat)
	}

	return fromDict(doc, resolve(opts))
}

// LoadJSONFile opens path and decodes it with LoadJSON.
func LoadJSONFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadJSON(f, opts...)
}

// fromDict inserts vertices and costs in sorted order.
func fromDict(doc map[string]map[string]float64, o options) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(!o.undirected))

	froms := sortedKeys(doc)
	var (
		from, to string
		w        float64
		back     float64
		ok       bool
		err      error
	)
	for _, from = range froms {
		if err = g.AddVertex(from); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", from, err)
		}
	}
	for _, from = range froms {
		for _, to = range sortedKeys(doc[from]) {
			if from == to {
				continue
			}
			w = doc[from][to]
			if o.undirected {
				if back, ok = doc[to][from]; ok && back != w {
					return nil, fmt.Errorf("%s↔%s: %g vs %g: %w", from, to, w, back, ErrAsymmetric)
				}
			}
			if err = g.AddEdge(from, to, w); err != nil {
				return nil, fmt.Errorf("edge %s→%s: %w", from, to, err)
			}
		}
	}

	return g, nil
}

// WriteJSON renders g as indented dict-of-dicts JSON. Pairs without a cost
// are omitted.
//
// Complexity: O(V²).
func WriteJSON(w io.Writer, g matrix.Source) error {
	doc := ToDict(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// WriteJSONFile writes g to path, truncating an existing file.
func WriteJSONFile(path string, g matrix.Source) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteJSON(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ToDict snapshots g into a dict-of-dicts map.
func ToDict(g matrix.Source) map[string]map[string]float64 {
	ids := g.Vertices()
	doc := make(map[string]map[string]float64, len(ids))
	var (
		from, to string
		w        float64
		err      error
	)
	for _, from = range ids {
		inner := make(map[string]float64)
		for _, to = range ids {
			if from == to {
				continue
			}
			if w, err = g.Cost(from, to); err != nil || math.IsInf(w, 0) {
				continue
			}
			inner[to] = w
		}
		doc[from] = inner
	}

	return doc
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
