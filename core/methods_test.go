// Package core_test verifies core.Graph method-level contracts: vertex and
// cost lifecycle, mirroring, sentinel errors and deterministic ordering.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent inserts.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // duplicate is a no-op
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("B"))
	require.False(t, g.HasVertex(""))
	require.Equal(t, 1, g.VertexCount())
}

// TestGraph_VerticesSorted anchors the lexicographic vertex order.
func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b", "10", "2"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.Equal(t, []string{"10", "2", "a", "b", "c"}, g.Vertices())
}

// TestGraph_UndirectedMirror checks that undirected costs are symmetric and
// that overwriting a pair does not inflate EdgeCount.
func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3))

	c, err := g.Cost("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.AddEdge("B", "A", 5))
	c, err = g.Cost("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 5.0, c)
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.Directed())
}

// TestGraph_DirectedOneWay checks that directed costs are not mirrored.
func TestGraph_DirectedOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))

	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))

	_, err := g.Cost("B", "A")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.Cost("A", "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_AddEdgeValidation covers weight and loop policies.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "B", -1), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge("A", "A", 0), core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	require.NoError(t, looped.AddEdge("A", "A", 0))
	require.Equal(t, 1, looped.EdgeCount())
	require.True(t, looped.Looped())
}

// TestGraph_Neighbors verifies sorted neighbor IDs and the missing-vertex sentinel.
func TestGraph_Neighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("D"))

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, nbs)

	nbs, err = g.Neighbors("D")
	require.NoError(t, err)
	require.Empty(t, nbs)

	_, err = g.Neighbors("X")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_PathCost sums consecutive costs and propagates lookup failures.
func TestGraph_PathCost(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("0", "1", 2))
	require.NoError(t, g.AddEdge("1", "2", 3))

	c, err := g.PathCost([]string{"0", "1", "2", "1", "0"})
	require.NoError(t, err)
	require.Equal(t, 10.0, c)

	c, err = g.PathCost([]string{"0"})
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = g.PathCost([]string{"0", "2"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_CloneIndependent verifies that Clone is a deep copy.
func TestGraph_CloneIndependent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge("A", "B", 9))
	require.NoError(t, c.AddEdge("B", "C", 1))

	w, err := g.Cost("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
	require.False(t, g.HasVertex("C"))
	require.True(t, c.Directed())
	require.Equal(t, 2, c.EdgeCount())
}
