package genetic

import (
	"fmt"
	"math/rand"
)

// PopulationStats summarizes the fitness distribution of a Population.
type PopulationStats struct {
	Size  int
	Best  float64
	Worst float64
	Mean  float64
	Total float64
}

// Population is an insertion-ordered collection of Tours.
// It is not safe for concurrent mutation.
type Population struct {
	tours []Tour
}

// NewPopulation returns an empty Population with room for capacity tours.
func NewPopulation(capacity int) *Population {
	if capacity < 0 {
		capacity = 0
	}

	return &Population{tours: make([]Tour, 0, capacity)}
}

// Append adds t at the end.
func (p *Population) Append(t Tour) { p.tours = append(p.tours, t) }

// Size returns the number of tours.
func (p *Population) Size() int { return len(p.tours) }

// At returns the i-th tour in insertion order.
func (p *Population) At(i int) Tour { return p.tours[i] }

// Tours returns a copy of the member slice.
func (p *Population) Tours() []Tour {
	out := make([]Tour, len(p.tours))
	copy(out, p.tours)

	return out
}

// TotalFitness returns Σ fitness over all members.
func (p *Population) TotalFitness() float64 {
	var (
		sum float64
		t   Tour
	)
	for _, t = range p.tours {
		sum += t.fitness
	}

	return sum
}

// Best returns the member with the lowest fitness; ties go to the earliest.
//
// Complexity: O(n).
func (p *Population) Best() (Tour, error) {
	i := p.bestIndex(p.tours)
	if i < 0 {
		return Tour{}, ErrEmptyPopulation
	}

	return p.tours[i], nil
}

// bestIndex returns the index of the first minimum of ts, or -1.
func (p *Population) bestIndex(ts []Tour) int {
	if len(ts) == 0 {
		return -1
	}
	best := 0
	var i int
	for i = 1; i < len(ts); i++ {
		if ts[i].fitness < ts[best].fitness {
			best = i
		}
	}

	return best
}

// Contains reports whether a structurally equal tour is a member.
func (p *Population) Contains(t Tour) bool {
	var m Tour
	for _, m = range p.tours {
		if m.Equal(t) {
			return true
		}
	}

	return false
}

// Elite returns the k best members by repeated extraction of the minimum
// from a working copy, so equal-fitness members keep insertion order.
// k is clamped to [0, Size()].
//
// Complexity: O(k·n).
func (p *Population) Elite(k int) []Tour {
	if k > len(p.tours) {
		k = len(p.tours)
	}
	if k <= 0 {
		return nil
	}

	work := p.Tours()
	out := make([]Tour, 0, k)
	var i int
	for len(out) < k {
		i = p.bestIndex(work)
		out = append(out, work[i])
		work = append(work[:i], work[i+1:]...)
	}

	return out
}

// RouletteSelect draws one member with probability proportional to its
// weight under sel. A threshold r·total with r ∈ [0,1) is walked through
// the members in insertion order; the first member with positive weight
// whose cumulative weight reaches it wins. When every weight is zero the
// pick is uniform, and a floating-point shortfall returns the last member.
//
// Errors: ErrEmptyPopulation.
//
// Complexity: O(n).
func (p *Population) RouletteSelect(rng *rand.Rand, sel Selection) (Tour, error) {
	n := len(p.tours)
	if n == 0 {
		return Tour{}, ErrEmptyPopulation
	}

	weights, total, err := p.weights(sel)
	if err != nil {
		return Tour{}, err
	}
	if total <= 0 {
		return p.tours[rng.Intn(n)], nil
	}

	threshold := total * rng.Float64()
	var (
		acc float64
		i   int
	)
	for i = 0; i < n; i++ {
		acc += weights[i]
		if acc >= threshold && weights[i] > 0 {
			return p.tours[i], nil
		}
	}

	return p.tours[n-1], nil
}

// weights returns per-member roulette weights and their sum.
func (p *Population) weights(sel Selection) ([]float64, float64, error) {
	w := make([]float64, len(p.tours))
	var (
		total float64
		i     int
	)
	switch sel {
	case SelectCostProportional:
		for i = range p.tours {
			w[i] = p.tours[i].fitness
			total += w[i]
		}
	case SelectInverseCost:
		worst := p.tours[0].fitness
		for i = range p.tours {
			if p.tours[i].fitness > worst {
				worst = p.tours[i].fitness
			}
		}
		for i = range p.tours {
			w[i] = worst - p.tours[i].fitness
			total += w[i]
		}
	default:
		return nil, 0, fmt.Errorf("RouletteSelect: selection %d: %w", int(sel), ErrInvalidConfiguration)
	}

	return w, total, nil
}

// Stats returns the fitness summary; the zero value for an empty population.
//
// Complexity: O(n).
func (p *Population) Stats() PopulationStats {
	if len(p.tours) == 0 {
		return PopulationStats{}
	}
	st := PopulationStats{
		Size:  len(p.tours),
		Best:  p.tours[0].fitness,
		Worst: p.tours[0].fitness,
	}
	var t Tour
	for _, t = range p.tours {
		if t.fitness < st.Best {
			st.Best = t.fitness
		}
		if t.fitness > st.Worst {
			st.Worst = t.fitness
		}
		st.Total += t.fitness
	}
	st.Mean = st.Total / float64(st.Size)

	return st
}
