// Package core provides the cost graph consumed by the genetic solver:
// a thread-safe, in-memory mapping from vertex ID to neighbor ID to a
// non-negative float64 traversal cost.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected costs (WithDirected). Undirected graphs mirror
//     every AddEdge into costs[to][from].
//   - Self-loops (WithLoops). Loops are never part of a tour but appear in
//     dict-of-dicts inputs that store a zero diagonal.
//   - Deterministic iteration: Vertices() and Neighbors() return sorted IDs.
//   - A single sync.RWMutex, so one Graph can back several concurrent solves.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	AddEdge(from, to string, cost float64) error  // O(1), overwrites
//	Cost(from, to string) (float64, error)        // O(1)
//	Vertices() []string                           // O(V log V)
//	Neighbors(id string) ([]string, error)        // O(d log d)
//	PathCost(path []string) (float64, error)      // O(len(path))
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - no cost is defined for the ordered pair.
//	ErrBadWeight      - negative, NaN or infinite cost.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 3)
//	c, _ := g.Cost("B", "A") // 3 (undirected mirror)
package core
