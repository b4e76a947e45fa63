package graphio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/core"
)

// Instance is the decoded header of a TSPLIB XML document.
type Instance struct {
	Name        string
	Source      string
	Description string
}

type tsplibDoc struct {
	XMLName     xml.Name       `xml:"travellingSalesmanProblemInstance"`
	Name        string         `xml:"name"`
	Source      string         `xml:"source"`
	Description string         `xml:"description"`
	Vertices    []tsplibVertex `xml:"graph>vertex"`
}

type tsplibVertex struct {
	Edges []tsplibEdge `xml:"edge"`
}

type tsplibEdge struct {
	Cost   string `xml:"cost,attr"`
	Target string `xml:",chardata"`
}

// LoadTSPLIB decodes a TSPLIB XML instance. Vertex k is named
// strconv.Itoa(k) in document order; costs use the "cost" attribute
// (scientific notation accepted).
//
// Complexity: O(V + E).
func LoadTSPLIB(r io.Reader, opts ...Option) (*core.Graph, Instance, error) {
	var doc tsplibDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Instance{}, fmt.Errorf("LoadTSPLIB: %w: %w", ErrFormat, err)
	}
	if len(doc.Vertices) == 0 {
		return nil, Instance{}, fmt.Errorf("LoadTSPLIB: no vertices: %w", ErrFormat)
	}

	dict := make(map[string]map[string]float64, len(doc.Vertices))
	var (
		k      int
		v      tsplibVertex
		e      tsplibEdge
		target int
		cost   float64
		err    error
	)
	for k, v = range doc.Vertices {
		inner := make(map[string]float64, len(v.Edges))
		for _, e = range v.Edges {
			if target, err = strconv.Atoi(strings.TrimSpace(e.Target)); err != nil || target < 0 || target >= len(doc.Vertices) {
				return nil, Instance{}, fmt.Errorf("LoadTSPLIB: vertex %d: edge target %q: %w", k, e.Target, ErrFormat)
			}
			if cost, err = strconv.ParseFloat(strings.TrimSpace(e.Cost), 64); err != nil {
				return nil, Instance{}, fmt.Errorf("LoadTSPLIB: vertex %d: cost %q: %w", k, e.Cost, ErrFormat)
			}
			inner[strconv.Itoa(target)] = cost
		}
		dict[strconv.Itoa(k)] = inner
	}

	g, err := fromDict(dict, resolve(opts))
	if err != nil {
		return nil, Instance{}, fmt.Errorf("LoadTSPLIB: %w", err)
	}

	return g, Instance{
		Name:        strings.TrimSpace(doc.Name),
		Source:      strings.TrimSpace(doc.Source),
		Description: strings.TrimSpace(doc.Description),
	}, nil
}

// LoadTSPLIBFile opens path and decodes it with LoadTSPLIB.
func LoadTSPLIBFile(path string, opts ...Option) (*core.Graph, Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Instance{}, err
	}
	defer f.Close()

	return LoadTSPLIB(f, opts...)
}
