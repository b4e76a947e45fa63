// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every neighbor appears.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentCostAndClone validates that concurrent cost lookups and
// clones do not race with writers.
func TestConcurrentCostAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 20; i++ {
		require.NoError(t, g.AddEdge("A", fmt.Sprintf("V%d", i), 1))
	}

	const readers = 50
	const writers = 10
	var wg sync.WaitGroup
	wg.Add(readers + writers)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.Cost("A", "V0")
			_ = g.Clone()
			_ = g.Vertices()
		}()
	}
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("B", fmt.Sprintf("W%d", id), 2)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1+20+1+writers, g.VertexCount())
}
