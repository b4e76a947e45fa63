package genetic

import (
	"errors"
	"time"
)

// Sentinel errors. Callers branch with errors.Is; returned errors carry
// context via %w wrapping.
var (
	// ErrMissingEdge is returned when a tour uses a pair of vertices the cost
	// graph cannot price. It is fatal: the graph is required to be complete.
	ErrMissingEdge = errors.New("genetic: missing edge")

	// ErrInvalidConfiguration is returned for out-of-range Options or
	// endpoints that are not vertices of the graph.
	ErrInvalidConfiguration = errors.New("genetic: invalid configuration")

	// ErrDegenerateGraph is returned when the graph has fewer than two vertices.
	ErrDegenerateGraph = errors.New("genetic: graph has fewer than two vertices")

	// ErrPopulationTooLarge is returned when DistinctSeed cannot produce
	// PopulationSize distinct tours.
	ErrPopulationTooLarge = errors.New("genetic: population larger than distinct tours available")

	// ErrEmptyPopulation is returned by aggregate queries on an empty population.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrTourMismatch is returned when tours of different problems are combined
	// or a gene sequence does not fit the problem.
	ErrTourMismatch = errors.New("genetic: tour does not belong to problem")

	// ErrTooManyVertices is returned by BruteForce beyond its enumeration limit.
	ErrTooManyVertices = errors.New("genetic: too many vertices for exhaustive search")
)

// CostGraph is the read-only cost provider consumed by the solver.
// *core.Graph satisfies it.
type CostGraph interface {
	// Cost returns the cost of traversing from→to.
	Cost(from, to string) (float64, error)

	// Vertices returns all vertex IDs in a deterministic order.
	Vertices() []string
}

// StopReason tells why Solve returned.
type StopReason int

const (
	// StopStagnation: MaxStagnation consecutive generations without strict improvement.
	StopStagnation StopReason = iota
	// StopMaxGenerations: the optional generation cap was reached.
	StopMaxGenerations
	// StopCancelled: the context was cancelled or its deadline passed.
	StopCancelled
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopStagnation:
		return "stagnation"
	case StopMaxGenerations:
		return "max_generations"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the best tour of the final population as vertex IDs,
	// e.g. [0 3 2 1 0] for a round trip from "0".
	Tour []string

	// Cost is the total cost of Tour.
	Cost float64

	// Generations is the number of generations built after seeding.
	Generations int

	// Best is Tour as a genetic.Tour value.
	Best Tour

	// Population is the final generation.
	Population *Population

	// Reason tells which terminal state was reached.
	Reason StopReason

	// Elapsed is the wall-clock duration of Solve.
	Elapsed time.Duration
}

// GenerationStats is reported to Options.OnGeneration after every generation.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Stagnation int
	Improved   bool
}
