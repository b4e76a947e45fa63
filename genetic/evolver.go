package genetic

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// eliteEps absorbs representation error in PopulationSize·ElitismRate.
const eliteEps = 1e-9

// Evolver runs the generation loop over one Problem.
//
// An Evolver owns a *rand.Rand and is NOT safe for concurrent use; run
// independent solves with one Evolver each.
type Evolver struct {
	problem   *Problem
	opts      Options
	rng       *rand.Rand
	log       *zap.Logger
	eliteSize int
}

// NewEvolver validates opts, compiles g and returns a ready Evolver.
//
// Errors:
//   - ErrInvalidConfiguration: out-of-range options, unknown endpoints, nil graph.
//   - ErrDegenerateGraph: fewer than two vertices.
func NewEvolver(g CostGraph, opts Options) (*Evolver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("NewEvolver: %w", err)
	}
	p, err := NewProblem(g, opts.Start, opts.Stop)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Evolver{
		problem:   p,
		opts:      opts,
		rng:       rngFromSeed(opts.Seed),
		log:       log,
		eliteSize: int(math.Floor(float64(opts.PopulationSize)*opts.ElitismRate + eliteEps)),
	}, nil
}

// Problem returns the compiled problem.
func (e *Evolver) Problem() *Problem { return e.problem }

// Options returns the options the Evolver was built with.
func (e *Evolver) Options() Options { return e.opts }

// EliteSize returns floor(PopulationSize·ElitismRate).
func (e *Evolver) EliteSize() int { return e.eliteSize }

// Seed builds an initial population of PopulationSize random tours.
//
// With DistinctSeed, duplicates are rejected through a seen-set. When fewer
// distinct tours exist than PopulationSize, or the retry cap is exhausted,
// it fails with ErrPopulationTooLarge.
//
// Complexity: O(PopulationSize·n) expected.
func (e *Evolver) Seed() (*Population, error) {
	size := e.opts.PopulationSize
	if e.opts.DistinctSeed && e.problem.distinctTours(size) < size {
		return nil, fmt.Errorf("Seed: %d distinct tours for population %d: %w",
			e.problem.distinctTours(size), size, ErrPopulationTooLarge)
	}

	pop := NewPopulation(size)
	seen := make(map[string]struct{}, size)
	limit := e.opts.seedAttempts()

	var (
		attempts int
		t        Tour
		err      error
		key      string
		dup      bool
	)
	for pop.Size() < size {
		if e.opts.DistinctSeed && attempts >= limit {
			return nil, fmt.Errorf("Seed: %d distinct after %d attempts: %w", pop.Size(), attempts, ErrPopulationTooLarge)
		}
		attempts++
		if t, err = e.problem.RandomTour(e.rng); err != nil {
			return nil, fmt.Errorf("Seed: %w", err)
		}
		if e.opts.DistinctSeed {
			key = t.Key()
			if _, dup = seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		pop.Append(t)
	}

	return pop, nil
}

// Step builds the next generation from cur:
//  1. The EliteSize best tours are copied first.
//  2. Until full: father and mother are drawn by roulette; with probability
//     CrossoverRate (son, daughter) = mother × father; independently with
//     probability MutationRate son = mutate(father) and daughter =
//     mutate(mother); missing offspring default to the parents.
//  3. The son is appended, then the daughter if room remains.
//
// Complexity: O(PopulationSize·n) per generation.
func (e *Evolver) Step(cur *Population) (*Population, error) {
	if cur == nil || cur.Size() == 0 {
		return nil, fmt.Errorf("Step: %w", ErrEmptyPopulation)
	}

	size := e.opts.PopulationSize
	next := NewPopulation(size)
	var t Tour
	for _, t = range cur.Elite(e.eliteSize) {
		next.Append(t)
	}

	var (
		father, mother Tour
		son, daughter  Tour
		err            error
	)
	for next.Size() < size {
		if father, err = cur.RouletteSelect(e.rng, e.opts.Selection); err != nil {
			return nil, fmt.Errorf("Step: %w", err)
		}
		if mother, err = cur.RouletteSelect(e.rng, e.opts.Selection); err != nil {
			return nil, fmt.Errorf("Step: %w", err)
		}

		son, daughter = Tour{}, Tour{}
		if hit(e.rng, e.opts.CrossoverRate) {
			if son, daughter, err = mother.Crossover(father, e.rng); err != nil {
				return nil, fmt.Errorf("Step: %w", err)
			}
		}
		if hit(e.rng, e.opts.MutationRate) {
			if son, err = father.Mutate(e.rng); err != nil {
				return nil, fmt.Errorf("Step: %w", err)
			}
		}
		if hit(e.rng, e.opts.MutationRate) {
			if daughter, err = mother.Mutate(e.rng); err != nil {
				return nil, fmt.Errorf("Step: %w", err)
			}
		}
		if son.IsZero() {
			son = father.Clone()
		}
		if daughter.IsZero() {
			daughter = mother.Clone()
		}

		next.Append(son)
		if next.Size() < size {
			next.Append(daughter)
		}
	}

	return next, nil
}

// Solve reseeds the RNG from Options.Seed and evolves until MaxStagnation
// consecutive generations bring no strict improvement of the best fitness,
// MaxGenerations is reached, or ctx is done. On cancellation the partial
// Result is returned together with ctx.Err().
func (e *Evolver) Solve(ctx context.Context) (Result, error) {
	begin := time.Now()
	e.rng = rngFromSeed(e.opts.Seed)

	pop, err := e.Seed()
	if err != nil {
		return Result{}, err
	}
	best, err := pop.Best()
	if err != nil {
		return Result{}, err
	}

	var (
		reason     = StopStagnation
		stagnation int
		generation int
		next       *Population
		nextBest   Tour
		improved   bool
		ctxErr     error
		st         PopulationStats
	)
loop:
	for stagnation < e.opts.MaxStagnation {
		if e.opts.MaxGenerations > 0 && generation >= e.opts.MaxGenerations {
			reason = StopMaxGenerations
			break
		}
		select {
		case <-ctx.Done():
			reason, ctxErr = StopCancelled, ctx.Err()
			break loop
		default:
		}

		if next, err = e.Step(pop); err != nil {
			return Result{}, err
		}
		if nextBest, err = next.Best(); err != nil {
			return Result{}, err
		}

		improved = nextBest.Fitness() < best.Fitness()
		if improved {
			stagnation = 0
		} else {
			stagnation++
		}
		pop, best = next, nextBest
		generation++

		st = pop.Stats()
		e.log.Debug("generation",
			zap.Int("generation", generation),
			zap.Float64("best", st.Best),
			zap.Float64("mean", st.Mean),
			zap.Int("stagnation", stagnation),
		)
		if e.opts.OnGeneration != nil {
			e.opts.OnGeneration(GenerationStats{
				Generation: generation,
				Best:       st.Best,
				Worst:      st.Worst,
				Mean:       st.Mean,
				Stagnation: stagnation,
				Improved:   improved,
			})
		}
	}

	res := Result{
		Tour:        best.Vertices(),
		Cost:        best.Fitness(),
		Generations: generation,
		Best:        best,
		Population:  pop,
		Reason:      reason,
		Elapsed:     time.Since(begin),
	}
	e.log.Info("solve finished",
		zap.Stringer("reason", reason),
		zap.Int("generations", generation),
		zap.Float64("cost", res.Cost),
		zap.Strings("tour", res.Tour),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, ctxErr
}

// Solve is a convenience wrapper around NewEvolver and Evolver.Solve.
//
// Example:
//
//	opts := genetic.DefaultOptions()
//	opts.Start = "0"
//	res, err := genetic.Solve(ctx, g, opts)
func Solve(ctx context.Context, g CostGraph, opts Options) (Result, error) {
	e, err := NewEvolver(g, opts)
	if err != nil {
		return Result{}, err
	}

	return e.Solve(ctx)
}
