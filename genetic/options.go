package genetic

import (
	"fmt"

	"go.uber.org/zap"
)

// Selection chooses the weight RouletteSelect assigns to a tour.
type Selection int

const (
	// SelectCostProportional weights a tour by its cost. Expensive tours are
	// therefore picked more often; this is the historical behavior.
	SelectCostProportional Selection = iota

	// SelectInverseCost weights a tour by (maxCost − cost) so cheap tours are
	// picked more often.
	SelectInverseCost
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case SelectCostProportional:
		return "cost"
	case SelectInverseCost:
		return "inverse"
	default:
		return "unknown"
	}
}

// ParseSelection maps a String() form back to its Selection.
func ParseSelection(name string) (Selection, error) {
	switch name {
	case "cost", "":
		return SelectCostProportional, nil
	case "inverse":
		return SelectInverseCost, nil
	default:
		return 0, fmt.Errorf("selection %q: %w", name, ErrInvalidConfiguration)
	}
}

// Default option values.
const (
	DefaultPopulationSize = 100
	DefaultCrossoverRate  = 0.7
	DefaultMutationRate   = 0.05
	DefaultElitismRate    = 0.1
	DefaultMaxStagnation  = 100

	// seedAttemptsPerMember scales the default retry cap of distinct seeding.
	seedAttemptsPerMember = 64
)

// Options configures one solve. The zero value is not usable; start from
// DefaultOptions and set Start.
type Options struct {
	// Start is the vertex every tour begins at.
	Start string

	// Stop is the vertex every tour ends at. Empty (or equal to Start)
	// means a round trip back to Start.
	Stop string

	// PopulationSize is the number of tours per generation (≥ 2).
	PopulationSize int

	// CrossoverRate is the probability in [0,1] that a parent pair is crossed.
	CrossoverRate float64

	// MutationRate is the probability in [0,1] that each parent is mutated
	// into an offspring.
	MutationRate float64

	// ElitismRate in [0,1) is the share of best tours copied unchanged.
	ElitismRate float64

	// MaxStagnation is the number of consecutive non-improving generations
	// that ends the solve (≥ 1).
	MaxStagnation int

	// MaxGenerations caps the number of generations; 0 means unlimited.
	MaxGenerations int

	// Seed drives the RNG; 0 selects a fixed default seed.
	Seed int64

	// Selection picks the roulette weighting policy.
	Selection Selection

	// DistinctSeed rejects duplicate tours in the initial population. Off by
	// default; when set, a population larger than the number of distinct
	// tours fails with ErrPopulationTooLarge.
	DistinctSeed bool

	// MaxSeedAttempts caps random draws during distinct seeding;
	// 0 means 64·PopulationSize.
	MaxSeedAttempts int

	// Logger receives per-generation debug and final info entries; nil disables logging.
	Logger *zap.Logger

	// OnGeneration, if set, is called after every generation.
	OnGeneration func(GenerationStats)
}

// DefaultOptions returns the documented defaults: population 100, crossover
// 0.7, mutation 0.05, elitism 0.1, stagnation 100, cost-proportional
// selection and duplicates allowed in the seed population. Start must still
// be set by the caller.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
		ElitismRate:    DefaultElitismRate,
		MaxStagnation:  DefaultMaxStagnation,
		Selection:      SelectCostProportional,
	}
}

// seedAttempts resolves the distinct-seeding retry cap.
func (o Options) seedAttempts() int {
	if o.MaxSeedAttempts > 0 {
		return o.MaxSeedAttempts
	}

	return seedAttemptsPerMember * o.PopulationSize
}
