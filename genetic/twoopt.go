package genetic

import (
	"fmt"
	"math"
)

// twoOptEps is the minimum gain that counts as an improving move.
const twoOptEps = 1e-9

// TwoOpt polishes t with deterministic first-improvement 2-opt over the
// interior: a move reverses genes[i..k], replacing arcs (a→b),(c→d) with
// (a→c),(b→d). Endpoints never move, so round trips and start→stop paths
// are both handled. Reversed segments are re-priced in the reverse
// direction, which keeps the move exact on directed graphs. Candidates
// crossing a missing edge are skipped.
//
// maxMoves caps the number of accepted moves; 0 means until no move
// improves. Returns the polished tour and the number of accepted moves.
//
// Complexity: O(n³) per accepted move, O(n) memory.
func (t Tour) TwoOpt(maxMoves int) (Tour, int, error) {
	if t.p == nil {
		return Tour{}, 0, fmt.Errorf("TwoOpt: %w", ErrTourMismatch)
	}
	if maxMoves < 0 {
		return Tour{}, 0, fmt.Errorf("TwoOpt: maxMoves=%d: %w", maxMoves, ErrInvalidConfiguration)
	}

	g := t.Genes()
	last := len(g) - 2 // last interior position
	var (
		moves int
		i, k  int
		delta float64
	)
search:
	for maxMoves == 0 || moves < maxMoves {
		for i = 1; i < last; i++ {
			for k = i + 1; k <= last; k++ {
				delta = t.p.reversalDelta(g, i, k)
				if delta < -twoOptEps {
					reverseInts(g[i : k+1])
					moves++
					continue search
				}
			}
		}
		break
	}
	if moves == 0 {
		return t.Clone(), 0, nil
	}

	out, err := t.p.newTour(g)
	if err != nil {
		return Tour{}, 0, fmt.Errorf("TwoOpt: %w", err)
	}

	return out, moves, nil
}

// reversalDelta returns the cost change of reversing g[i..k], or +Inf when
// the reversed tour would need a missing edge.
func (p *Problem) reversalDelta(g []int, i, k int) float64 {
	a, b, c, d := g[i-1], g[i], g[k], g[k+1]
	added := p.cost(a, c) + p.cost(b, d)
	removed := p.cost(a, b) + p.cost(c, d)

	var j int
	for j = i; j < k; j++ {
		removed += p.cost(g[j], g[j+1])
		added += p.cost(g[j+1], g[j])
	}
	if math.IsInf(added, 1) {
		return math.Inf(1)
	}

	return added - removed
}

func reverseInts(a []int) {
	var i, j int
	for i, j = 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
