// SPDX-License-Identifier: MIT
// Package: gatsp/builder
//
// impl_random.go - implementation of Random(n, connectivity) constructor.
//
// Contract:
//   • n ≥ 2, 0 ≤ connectivity ≤ 1, cfg.rng != nil.
//   • Every vertex is added, even when it ends up with no priced pair.
//   • Undirected: each unordered pair {i,j} is priced with probability
//     connectivity and mirrored by core. Directed: each ordered pair is
//     decided independently.
//   • A missing pair stays missing; the solver treats it as fatal when a
//     tour traverses it. connectivity=1 is equivalent to Complete(n).
//
// Complexity: O(n²) draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gatsp/core"
)

const methodRandom = "Random"

// Random returns a Constructor that prices pairs with probability connectivity.
func Random(n int, connectivity float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minCompleteNodes, ErrTooFewVertices)
		}
		if !(connectivity >= 0 && connectivity <= 1) {
			return fmt.Errorf("%s: connectivity=%g: %w", methodRandom, connectivity, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRNG)
		}
		ids, err := addVertices(g, cfg, n, methodRandom)
		if err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = maybeEdge(g, cfg, ids[i], ids[j], connectivity); err != nil {
					return err
				}
				if g.Directed() {
					if err = maybeEdge(g, cfg, ids[j], ids[i], connectivity); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// maybeEdge draws the pair's presence, then its cost.
func maybeEdge(g *core.Graph, cfg builderConfig, from, to string, p float64) error {
	if cfg.rng.Float64() >= p {
		return nil
	}
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandom, from, to, w, err)
	}

	return nil
}
