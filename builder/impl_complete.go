// SPDX-License-Identifier: MIT
// Package: gatsp/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): a tour needs two vertices.
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Undirected: one cost per unordered pair {i,j}, i<j; core mirrors it.
//   • Directed: an independent cost for i→j and for j→i (asymmetric instance).
//
// Complexity:
//   • Time: O(n²). Space: O(n) for the ID slice.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j; for directed graphs i→j is
//     drawn before j→i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gatsp/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that prices every pair of n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n, methodComplete)
		if err != nil {
			return err
		}

		var (
			i, j int
			w    float64
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				w = cfg.weightFn(cfg.rng)
				if err = g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, ids[i], ids[j], w, err)
				}
				if g.Directed() {
					w = cfg.weightFn(cfg.rng)
					if err = g.AddEdge(ids[j], ids[i], w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, ids[j], ids[i], w, err)
					}
				}
			}
		}

		return nil
	}
}

// addVertices inserts n vertices named by cfg.idFn and returns their IDs.
func addVertices(g *core.Graph, cfg builderConfig, n int, method string) ([]string, error) {
	ids := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
