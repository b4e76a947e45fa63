package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for adjacency ingestion.
var (
	// ErrNilSource indicates that a nil Source was passed to NewAdjacency.
	ErrNilSource = errors.New("matrix: source is nil")

	// ErrDuplicateVertex indicates that Source.Vertices returned an ID twice.
	ErrDuplicateVertex = errors.New("matrix: duplicate vertex id")

	// ErrBadCost indicates a NaN or negative cost from the Source.
	ErrBadCost = errors.New("matrix: cost is NaN or negative")

	// ErrUnknownVertex indicates a lookup by an ID absent from VertexIndex.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)

// Adjacency is a compiled, index-addressed view of a Source.
//
// IDs[i] is the vertex at row/column i, VertexIndex is its inverse.
// Mat[i][j] is the cost i→j or +Inf when the Source has no cost for the pair.
type Adjacency struct {
	Mat         *Dense
	IDs         []string
	VertexIndex map[string]int
}

// NewAdjacency prices every ordered pair of src into a Dense matrix.
//
// Steps:
//  1. Snapshot src.Vertices() (canonical order) and build VertexIndex.
//  2. For every i≠j call src.Cost; any lookup error becomes +Inf.
//  3. Reject NaN/negative costs; keep the diagonal at 0.
//
// Complexity: O(V²) time and memory.
func NewAdjacency(src Source) (*Adjacency, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	ids := src.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	index := make(map[string]int, n)
	var (
		i, j int
		id   string
	)
	for i, id = range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("NewAdjacency: %q: %w", id, ErrDuplicateVertex)
		}
		index[id] = i
	}

	mat, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		w    float64
		cerr error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			w, cerr = src.Cost(ids[i], ids[j])
			if cerr != nil {
				w = math.Inf(1)
			}
			if math.IsNaN(w) || w < 0 {
				return nil, fmt.Errorf("NewAdjacency: %s→%s=%g: %w", ids[i], ids[j], w, ErrBadCost)
			}
			mat.data[i*n+j] = w
		}
	}

	idsCopy := make([]string, n)
	copy(idsCopy, ids)

	return &Adjacency{Mat: mat, IDs: idsCopy, VertexIndex: index}, nil
}

// Index returns the row/column of id.
// Complexity: O(1).
func (a *Adjacency) Index(id string) (int, error) {
	i, ok := a.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// Size returns the number of vertices.
func (a *Adjacency) Size() int { return len(a.IDs) }
