package genetic

import (
	"errors"
	"fmt"
)

// MaxBruteForceInterior bounds the interior length BruteForce accepts
// (10! ≈ 3.6M tours).
const MaxBruteForceInterior = 10

// BruteForce enumerates every interior permutation of the (start, stop)
// problem over g and returns the cheapest tour. Ties keep the first tour in
// Heap's enumeration order. Tours with a missing edge are skipped.
//
// Errors: those of NewProblem; ErrTooManyVertices beyond
// MaxBruteForceInterior; ErrMissingEdge when no tour can be priced.
//
// Complexity: O(m!·n) time for m interior vertices, O(n) memory.
func BruteForce(g CostGraph, start, stop string) (Tour, error) {
	p, err := NewProblem(g, start, stop)
	if err != nil {
		return Tour{}, err
	}

	return p.BruteForce()
}

// BruteForce is the Problem-bound form of the package function.
func (p *Problem) BruteForce() (Tour, error) {
	m := len(p.interior)
	if m > MaxBruteForceInterior {
		return Tour{}, fmt.Errorf("BruteForce: %d interior vertices > %d: %w", m, MaxBruteForceInterior, ErrTooManyVertices)
	}

	a := make([]int, m)
	copy(a, p.interior)

	var (
		best    Tour
		lastErr error
	)
	consider := func() error {
		t, err := p.newTour(p.assemble(a))
		if err != nil {
			if errors.Is(err, ErrMissingEdge) {
				lastErr = err
				return nil
			}
			return err
		}
		if best.IsZero() || t.fitness < best.fitness {
			best = t
		}
		return nil
	}

	// Heap's algorithm, iterative form.
	if err := consider(); err != nil {
		return Tour{}, err
	}
	c := make([]int, m)
	var i int
	for i < m {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if err := consider(); err != nil {
				return Tour{}, err
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	if best.IsZero() {
		return Tour{}, fmt.Errorf("BruteForce: no complete tour: %w", lastErr)
	}

	return best, nil
}
