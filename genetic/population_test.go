package genetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/genetic"
)

// scenarioTours returns tours of the scenario costing 8116, 10714, 8100 and
// 8116 again (reversed), in that order.
func scenarioTours(t *testing.T) (*genetic.Problem, []genetic.Tour) {
	t.Helper()
	p := mustProblem(t, scenarioGraph(t), "0", "")

	return p, []genetic.Tour{
		mustTour(t, p, "0", "1", "2", "3", "0"), // 8116
		mustTour(t, p, "0", "1", "3", "2", "0"), // 10714
		mustTour(t, p, "0", "2", "1", "3", "0"), // 8100
		mustTour(t, p, "0", "3", "2", "1", "0"), // 8116
	}
}

func populationOf(ts ...genetic.Tour) *genetic.Population {
	pop := genetic.NewPopulation(len(ts))
	for _, t := range ts {
		pop.Append(t)
	}

	return pop
}

// TestPopulation_Empty checks aggregate queries on an empty population.
func TestPopulation_Empty(t *testing.T) {
	pop := genetic.NewPopulation(-1)
	require.Zero(t, pop.Size())
	require.Zero(t, pop.TotalFitness())

	_, err := pop.Best()
	require.ErrorIs(t, err, genetic.ErrEmptyPopulation)
	_, err = pop.RouletteSelect(genetic.RNGFromSeed(1), genetic.SelectCostProportional)
	require.ErrorIs(t, err, genetic.ErrEmptyPopulation)

	require.Nil(t, pop.Elite(3))
	require.Equal(t, genetic.PopulationStats{}, pop.Stats())
}

// TestPopulation_Aggregates covers Best, TotalFitness, Contains and Stats.
func TestPopulation_Aggregates(t *testing.T) {
	p, ts := scenarioTours(t)
	pop := populationOf(ts...)

	require.Equal(t, 4, pop.Size())
	require.Equal(t, 8116.0+10714+8100+8116, pop.TotalFitness())

	best, err := pop.Best()
	require.NoError(t, err)
	require.Equal(t, 8100.0, best.Fitness())
	require.True(t, best.Equal(ts[2]))

	require.True(t, pop.Contains(mustTour(t, p, "0", "3", "2", "1", "0")))
	require.False(t, pop.Contains(mustTour(t, p, "0", "3", "1", "2", "0")))

	st := pop.Stats()
	assert.Equal(t, 4, st.Size)
	assert.Equal(t, 8100.0, st.Best)
	assert.Equal(t, 10714.0, st.Worst)
	assert.Equal(t, pop.TotalFitness(), st.Total)
	assert.InDelta(t, pop.TotalFitness()/4, st.Mean, 1e-9)

	// Tours returns a copy.
	cp := pop.Tours()
	cp[0] = ts[1]
	assert.True(t, pop.At(0).Equal(ts[0]))
}

// TestPopulation_EliteOrder checks best-first extraction with stable ties.
func TestPopulation_EliteOrder(t *testing.T) {
	_, ts := scenarioTours(t)
	pop := populationOf(ts...)

	elite := pop.Elite(3)
	require.Len(t, elite, 3)
	assert.True(t, elite[0].Equal(ts[2]))
	// equal 8116 tours keep insertion order
	assert.True(t, elite[1].Equal(ts[0]))
	assert.True(t, elite[2].Equal(ts[3]))

	assert.Len(t, pop.Elite(10), 4)
	assert.Nil(t, pop.Elite(0))
	assert.Equal(t, 4, pop.Size(), "Elite must not mutate the population")
}

// TestPopulation_RouletteCostProportional checks draw frequencies against
// the cost weights.
func TestPopulation_RouletteCostProportional(t *testing.T) {
	_, ts := scenarioTours(t)
	pop := populationOf(ts[0], ts[1], ts[2])
	rng := genetic.RNGFromSeed(3)

	const draws = 30000
	counts := map[float64]int{}
	var i int
	for i = 0; i < draws; i++ {
		tour, err := pop.RouletteSelect(rng, genetic.SelectCostProportional)
		require.NoError(t, err)
		counts[tour.Fitness()]++
	}

	total := pop.TotalFitness()
	for _, tour := range pop.Tours() {
		want := tour.Fitness() / total
		got := float64(counts[tour.Fitness()]) / draws
		assert.InDelta(t, want, got, 0.02, "fitness %g", tour.Fitness())
	}
}

// TestPopulation_RouletteInverseCost checks that the worst member is never
// drawn under inverse weighting.
func TestPopulation_RouletteInverseCost(t *testing.T) {
	_, ts := scenarioTours(t)
	pop := populationOf(ts...)
	rng := genetic.RNGFromSeed(5)

	var i int
	for i = 0; i < 5000; i++ {
		tour, err := pop.RouletteSelect(rng, genetic.SelectInverseCost)
		require.NoError(t, err)
		require.NotEqual(t, 10714.0, tour.Fitness())
	}
}

// zeroSource makes rand.Float64 return exactly 0.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

// TestPopulation_RouletteSkipsZeroWeight pins that a zero-weight member is
// never drawn while some member has positive weight, even at threshold 0.
func TestPopulation_RouletteSkipsZeroWeight(t *testing.T) {
	_, ts := scenarioTours(t)
	pop := populationOf(ts[1], ts[2]) // inverse weights 0 and 2614

	tour, err := pop.RouletteSelect(rand.New(zeroSource{}), genetic.SelectInverseCost)
	require.NoError(t, err)
	require.Equal(t, 8100.0, tour.Fitness())
}

// TestPopulation_RouletteUniformFallback covers the all-zero weight case.
func TestPopulation_RouletteUniformFallback(t *testing.T) {
	_, ts := scenarioTours(t)
	pop := populationOf(ts[0], ts[3], ts[0].Clone())
	rng := genetic.RNGFromSeed(9)

	seen := map[string]int{}
	var i int
	for i = 0; i < 600; i++ {
		tour, err := pop.RouletteSelect(rng, genetic.SelectInverseCost)
		require.NoError(t, err)
		seen[tour.Key()]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen[ts[3].Key()], 100)

	_, err := pop.RouletteSelect(rng, genetic.Selection(42))
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)
}

// TestParseSelection round-trips the selection names.
func TestParseSelection(t *testing.T) {
	for _, sel := range []genetic.Selection{genetic.SelectCostProportional, genetic.SelectInverseCost} {
		got, err := genetic.ParseSelection(sel.String())
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}
	got, err := genetic.ParseSelection("")
	require.NoError(t, err)
	assert.Equal(t, genetic.SelectCostProportional, got)

	_, err = genetic.ParseSelection("tournament")
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)
	assert.Equal(t, "unknown", genetic.Selection(9).String())
}
