// File: methods_edges.go
// Role: Cost lifecycle & queries: AddEdge/HasEdge/Cost/Neighbors/EdgeCount/PathCost.
// Determinism:
//   - Neighbors() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge sets the cost of from→to, creating missing endpoints. In an
// undirected graph the cost is mirrored to to→from. Setting an existing
// pair overwrites its cost.
//
// Steps:
//  1. Validate IDs, cost and loop policy.
//  2. Lock mu, ensure both endpoints exist.
//  3. Store the cost (and its mirror when undirected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return fmt.Errorf("AddEdge(%s→%s, %g): %w", from, to, cost, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.setCostLocked(from, to, cost)
	if !g.directed && from != to {
		g.setCostLocked(to, from, cost)
	}

	return nil
}

// setCostLocked stores costs[from][to]; caller holds mu for writing.
func (g *Graph) setCostLocked(from, to string, cost float64) {
	inner, ok := g.costs[from]
	if !ok {
		inner = make(map[string]float64)
		g.costs[from] = inner
	}
	if _, exists := inner[to]; !exists {
		g.edgeCount++
	}
	inner[to] = cost
}

// HasEdge reports whether a cost is defined for from→to.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.costs[from][to]

	return ok
}

// Cost returns the cost of traversing from→to.
// Returns ErrVertexNotFound when either endpoint is unknown and
// ErrEdgeNotFound when both exist but no cost is defined.
//
// Complexity: O(1).
func (g *Graph) Cost(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return 0, fmt.Errorf("Cost(%s→%s): %w", from, to, ErrVertexNotFound)
	}
	if _, ok := g.vertices[to]; !ok {
		return 0, fmt.Errorf("Cost(%s→%s): %w", from, to, ErrVertexNotFound)
	}
	c, ok := g.costs[from][to]
	if !ok {
		return 0, fmt.Errorf("Cost(%s→%s): %w", from, to, ErrEdgeNotFound)
	}

	return c, nil
}

// Neighbors returns the sorted IDs reachable from id in one step.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.costs[id]))
	var to string
	for to = range g.costs[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeCount returns the number of stored ordered pairs. An undirected edge
// counts twice (once per direction); a loop counts once.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// PathCost sums Cost(path[i], path[i+1]) over consecutive pairs.
// A path shorter than two vertices costs 0.
//
// Complexity: O(len(path)).
func (g *Graph) PathCost(path []string) (float64, error) {
	var (
		sum float64
		c   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		c, err = g.Cost(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		sum += c
	}

	return sum, nil
}

// Clone returns a deep copy of g with identical flags.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		costs:      make(map[string]map[string]float64, len(g.costs)),
		edgeCount:  g.edgeCount,
	}
	var (
		id    string
		inner map[string]float64
	)
	for id = range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, inner = range g.costs {
		cp := make(map[string]float64, len(inner))
		for to, w := range inner {
			cp[to] = w
		}
		c.costs[id] = cp
	}

	return c
}
