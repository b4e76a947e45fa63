package builder

import "errors"

// Sentinel errors returned by constructors, wrapped with method context.
var (
	// ErrTooFewVertices indicates a vertex count below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrNeedRNG indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRNG = errors.New("builder: constructor requires an RNG")

	// ErrConstructFailed indicates a nil constructor or nil target graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
