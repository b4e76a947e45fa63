// Package core defines the cost Graph type, its construction options and
// sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that no cost is defined between two vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite cost.
	ErrBadWeight = errors.New("core: cost must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether costs are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (a cost from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a read-mostly cost graph.
//
// costs[from][to] holds the cost of traversing from→to. The vertex set is
// kept separately so isolated vertices are still reported by Vertices().
// mu guards vertices, costs and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	vertices  map[string]struct{}
	costs     map[string]map[string]float64
	edgeCount int // number of stored ordered pairs
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		costs:    make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether AddEdge stores one-way costs.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
