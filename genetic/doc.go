// Package genetic provides a genetic-algorithm solver for the Travelling
// Salesman Problem over a complete cost graph.
//
// The solver evolves a Population of Tours. A Tour is an immutable gene
// sequence of vertex indices whose endpoints are pinned to a start vertex
// (round trip) or to a start and a stop vertex (open path); only the interior
// genes take part in evolution.
//
// Each generation:
//
//  1. copies the floor(PopulationSize·ElitismRate) best tours unchanged,
//  2. fills the rest with offspring of roulette-selected parents: a
//     precedence-preserving crossover with probability CrossoverRate and an
//     interior swap mutation of each parent with probability MutationRate,
//  3. counts a stagnant generation when the new best is not strictly cheaper.
//
// The loop stops after MaxStagnation consecutive stagnant generations (or an
// optional MaxGenerations cap, or context cancellation) and returns the best
// tour of the final population.
//
// Determinism:
//   - All randomness flows from one *rand.Rand seeded from Options.Seed at
//     the start of every Solve; seed==0 selects a fixed default seed.
//   - Same graph + same Options ⇒ identical tour, cost and generation count.
//
// Concurrency:
//   - An Evolver is single-goroutine. Run independent solves with independent
//     Evolvers; they may share one read-only CostGraph.
//
// Errors are package sentinels (ErrMissingEdge, ErrInvalidConfiguration,
// ErrDegenerateGraph, ErrPopulationTooLarge, ...) matched with errors.Is.
//
// Selection polarity: RouletteSelect weights members by their raw cost by
// default, which favours expensive tours. This matches the historical
// behavior of the algorithm; SelectInverseCost weights by (maxCost − cost)
// instead and must be requested explicitly.
package genetic
