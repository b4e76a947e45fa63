package genetic

import "math/rand"

// Test-only bridges to unexported helpers.

// RNGFromSeed exposes rngFromSeed.
func RNGFromSeed(seed int64) *rand.Rand { return rngFromSeed(seed) }

// CrossAt exposes the fixed-cut crossover.
func CrossAt(a, b Tour, c int) (Tour, Tour, error) { return a.crossAt(b, c) }

// DistinctTours exposes Problem.distinctTours.
func DistinctTours(p *Problem, limit int) int { return p.distinctTours(limit) }

// ValidateOptions exposes validateOptions.
func ValidateOptions(opts Options) error { return validateOptions(opts) }
