package genetic_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/core"
	"github.com/katalvlaran/gatsp/genetic"
)

// scenarioCosts is the symmetric 4-vertex instance used across tests.
// Its optimum is 8100 via 0-2-1-3-0 (or the reverse 0-3-1-2-0).
var scenarioCosts = map[[2]string]float64{
	{"0", "1"}: 2635,
	{"0", "2"}: 2713,
	{"0", "3"}: 2437,
	{"1", "2"}: 314,
	{"1", "3"}: 2636,
	{"2", "3"}: 2730,
}

const scenarioOptimum = 8100

// scenarioGraph builds the undirected scenario instance.
func scenarioGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for pair, w := range scenarioCosts {
		require.NoError(t, g.AddEdge(pair[0], pair[1], w))
	}

	return g
}

// ringGraph builds a complete undirected graph on n ≤ 10 vertices named
// "0".."n-1" whose cheapest round trip is the ring 0-1-...-(n-1)-0:
// ring edges cost 1, every chord costs 10+|i-j|.
func ringGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := float64(10 + j - i)
			if j == i+1 || (i == 0 && j == n-1) {
				w = 1
			}
			require.NoError(t, g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), w))
		}
	}

	return g
}

// scenarioOptions returns the options of the convergence scenario.
func scenarioOptions(seed int64) genetic.Options {
	opts := genetic.DefaultOptions()
	opts.Start = "0"
	opts.PopulationSize = 10
	opts.MaxStagnation = 20
	opts.Seed = seed

	return opts
}

// mustProblem compiles g or fails the test.
func mustProblem(t *testing.T, g genetic.CostGraph, start, stop string) *genetic.Problem {
	t.Helper()
	p, err := genetic.NewProblem(g, start, stop)
	require.NoError(t, err)

	return p
}

// mustTour builds a tour from IDs or fails the test.
func mustTour(t *testing.T, p *genetic.Problem, ids ...string) genetic.Tour {
	t.Helper()
	tour, err := p.NewTour(ids)
	require.NoError(t, err)

	return tour
}
