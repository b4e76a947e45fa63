// Package genetic - validation utilities.
//
// This file contains the checks run once at Evolver construction and the
// structural tour check used by tests and by Problem.NewTour:
//  1. Options ranges (population, rates, stagnation, caps, selection).
//  2. Tour shape: length, pinned endpoints, interior permutation.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go.
package genetic

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// validateOptions checks internal consistency of Options without
// referencing the graph.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Start == "" {
		return fmt.Errorf("start vertex is empty: %w", ErrInvalidConfiguration)
	}
	if opts.PopulationSize < 2 {
		return fmt.Errorf("population size %d < 2: %w", opts.PopulationSize, ErrInvalidConfiguration)
	}
	if !inClosedUnit(opts.CrossoverRate) {
		return fmt.Errorf("crossover rate %g outside [0,1]: %w", opts.CrossoverRate, ErrInvalidConfiguration)
	}
	if !inClosedUnit(opts.MutationRate) {
		return fmt.Errorf("mutation rate %g outside [0,1]: %w", opts.MutationRate, ErrInvalidConfiguration)
	}
	// Elitism of 1 would copy the whole population forever.
	if math.IsNaN(opts.ElitismRate) || opts.ElitismRate < 0 || opts.ElitismRate >= 1 {
		return fmt.Errorf("elitism rate %g outside [0,1): %w", opts.ElitismRate, ErrInvalidConfiguration)
	}
	if opts.MaxStagnation < 1 {
		return fmt.Errorf("max stagnation %d < 1: %w", opts.MaxStagnation, ErrInvalidConfiguration)
	}
	if opts.MaxGenerations < 0 {
		return fmt.Errorf("max generations %d < 0: %w", opts.MaxGenerations, ErrInvalidConfiguration)
	}
	if opts.MaxSeedAttempts < 0 {
		return fmt.Errorf("max seed attempts %d < 0: %w", opts.MaxSeedAttempts, ErrInvalidConfiguration)
	}
	switch opts.Selection {
	case SelectCostProportional, SelectInverseCost:
	default:
		return fmt.Errorf("selection %d: %w", int(opts.Selection), ErrInvalidConfiguration)
	}

	return nil
}

// inClosedUnit reports whether x ∈ [0,1].
func inClosedUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

// validateGenes enforces the tour invariants of p:
//
//	len(genes) == p.TourLen(),
//	genes[0] == start and genes[last] == end,
//	interior genes are exactly the interior vertex set, each once.
//
// Complexity: O(n) time, O(n/64) words for the seen set.
func (p *Problem) validateGenes(genes []int) error {
	if len(genes) != p.tourLen {
		return fmt.Errorf("tour length %d, want %d: %w", len(genes), p.tourLen, ErrTourMismatch)
	}
	if genes[0] != p.start || genes[len(genes)-1] != p.end {
		return fmt.Errorf("tour endpoints %d..%d, want %d..%d: %w",
			genes[0], genes[len(genes)-1], p.start, p.end, ErrTourMismatch)
	}

	seen := bitset.New(uint(p.n))
	var (
		i int
		v int
	)
	for i = 1; i < len(genes)-1; i++ {
		v = genes[i]
		if v < 0 || v >= p.n || v == p.start || v == p.end {
			return fmt.Errorf("gene %d at %d is not an interior vertex: %w", v, i, ErrTourMismatch)
		}
		if seen.Test(uint(v)) {
			return fmt.Errorf("gene %d repeated at %d: %w", v, i, ErrTourMismatch)
		}
		seen.Set(uint(v))
	}
	if int(seen.Count()) != len(p.interior) {
		return fmt.Errorf("interior covers %d of %d vertices: %w", seen.Count(), len(p.interior), ErrTourMismatch)
	}

	return nil
}
