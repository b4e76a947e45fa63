package genetic

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Tour is one candidate solution: a gene sequence of vertex indices with
// pinned endpoints and a permuted interior.
//
// Tours are immutable values. Fitness is computed once at construction;
// Crossover and Mutate return new Tours. The zero Tour belongs to no
// Problem and is only useful as a "no tour" marker.
type Tour struct {
	p       *Problem
	genes   []int
	fitness float64
}

// Problem returns the Problem the tour belongs to.
func (t Tour) Problem() *Problem { return t.p }

// IsZero reports whether t is the zero Tour.
func (t Tour) IsZero() bool { return t.p == nil }

// Fitness returns the total tour cost. Lower is better.
func (t Tour) Fitness() float64 { return t.fitness }

// Len returns the number of genes.
func (t Tour) Len() int { return len(t.genes) }

// Genes returns a copy of the vertex indices.
func (t Tour) Genes() []int {
	out := make([]int, len(t.genes))
	copy(out, t.genes)

	return out
}

// Vertices returns the tour as vertex IDs.
func (t Tour) Vertices() []string {
	if t.p == nil {
		return nil
	}
	out := make([]string, len(t.genes))
	var (
		i int
		g int
	)
	for i, g = range t.genes {
		out[i] = t.p.adj.IDs[g]
	}

	return out
}

// Less orders tours by fitness ascending.
func (t Tour) Less(other Tour) bool { return t.fitness < other.fitness }

// Equal reports structural equality: same Problem and same genes.
func (t Tour) Equal(other Tour) bool {
	if t.p != other.p || len(t.genes) != len(other.genes) {
		return false
	}
	var i int
	for i = range t.genes {
		if t.genes[i] != other.genes[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of t.
func (t Tour) Clone() Tour {
	return Tour{p: t.p, genes: t.Genes(), fitness: t.fitness}
}

// Key returns a stable string identifying the gene sequence, e.g. "0,3,2,1,0".
func (t Tour) Key() string {
	var b strings.Builder
	var i int
	for i = range t.genes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t.genes[i]))
	}

	return b.String()
}

// String implements fmt.Stringer, e.g. "0 → 2 → 1 → 3 → 0 (8100)".
func (t Tour) String() string {
	return fmt.Sprintf("%s (%g)", strings.Join(t.Vertices(), " → "), t.fitness)
}

// Validate re-checks the tour invariants against its Problem.
func (t Tour) Validate() error {
	if t.p == nil {
		return fmt.Errorf("zero tour: %w", ErrTourMismatch)
	}

	return t.p.validateGenes(t.genes)
}

// interior returns a copy of the permutable genes.
func (t Tour) interior() []int {
	out := make([]int, len(t.genes)-2)
	copy(out, t.genes[1:len(t.genes)-1])

	return out
}

// Crossover recombines t with other and returns two children.
//
// Only interiors take part; endpoints are re-attached afterwards.
//  1. Pick a cut c uniformly in [0, m) where m is the interior length.
//  2. Prefix pass: for every value present in both t[:c] and other[:c],
//     taken in t[:c] order, swap inside the first child the value's position
//     with the position it holds in other.
//  3. Suffix pass: for every value present in both (updated) first[c:] and
//     other[c:], taken in other[c:] order, swap inside the second child the
//     value's position with the position it holds in the first child.
//
// Every swap stays within one child, so both children remain permutations.
//
// Errors: ErrTourMismatch for tours of different problems; ErrMissingEdge
// when a child cannot be priced.
//
// Complexity: O(n) time and memory.
func (t Tour) Crossover(other Tour, rng *rand.Rand) (Tour, Tour, error) {
	if t.p == nil || t.p != other.p {
		return Tour{}, Tour{}, fmt.Errorf("Crossover: %w", ErrTourMismatch)
	}

	m := len(t.genes) - 2
	if m <= 0 {
		return t.Clone(), other.Clone(), nil
	}

	return t.crossAt(other, rng.Intn(m))
}

// crossAt performs Crossover with a fixed cut c ∈ [0, m).
func (t Tour) crossAt(other Tour, c int) (Tour, Tour, error) {
	g1, g2 := t.interior(), other.interior()
	m := len(g1)
	n := t.p.n
	pos1 := positions(g1, n)
	pos2 := positions(g2, n)

	var (
		i, j int
		v    int
	)

	// Prefix pass.
	inPrefix2 := bitset.New(uint(n))
	for i = 0; i < c; i++ {
		inPrefix2.Set(uint(g2[i]))
	}
	prefix1 := append([]int(nil), g1[:c]...)
	for _, v = range prefix1 {
		if !inPrefix2.Test(uint(v)) {
			continue
		}
		i, j = pos1[v], pos2[v]
		swapTracked(g1, pos1, i, j)
	}

	// Suffix pass on the updated first child.
	inSuffix1 := bitset.New(uint(n))
	for i = c; i < m; i++ {
		inSuffix1.Set(uint(g1[i]))
	}
	suffix2 := append([]int(nil), g2[c:]...)
	for _, v = range suffix2 {
		if !inSuffix1.Test(uint(v)) {
			continue
		}
		i, j = pos2[v], pos1[v]
		swapTracked(g2, pos2, i, j)
	}

	first, err := t.p.newTour(t.p.assemble(g1))
	if err != nil {
		return Tour{}, Tour{}, fmt.Errorf("Crossover: %w", err)
	}
	second, err := t.p.newTour(t.p.assemble(g2))
	if err != nil {
		return Tour{}, Tour{}, fmt.Errorf("Crossover: %w", err)
	}

	return first, second, nil
}

// Mutate swaps two uniformly drawn interior positions and returns the
// result. Equal draws yield an identical copy.
//
// Complexity: O(n).
func (t Tour) Mutate(rng *rand.Rand) (Tour, error) {
	if t.p == nil {
		return Tour{}, fmt.Errorf("Mutate: %w", ErrTourMismatch)
	}
	genes := t.Genes()
	m := len(genes) - 2
	if m <= 0 {
		return t.Clone(), nil
	}
	i := 1 + rng.Intn(m)
	j := 1 + rng.Intn(m)
	genes[i], genes[j] = genes[j], genes[i]

	out, err := t.p.newTour(genes)
	if err != nil {
		return Tour{}, fmt.Errorf("Mutate: %w", err)
	}

	return out, nil
}

// positions returns pos with pos[v] == index of v in genes.
func positions(genes []int, n int) []int {
	pos := make([]int, n)
	var i int
	for i = range genes {
		pos[genes[i]] = i
	}

	return pos
}

// swapTracked swaps genes[i] and genes[j] keeping pos in sync.
func swapTracked(genes, pos []int, i, j int) {
	if i == j {
		return
	}
	genes[i], genes[j] = genes[j], genes[i]
	pos[genes[i]] = i
	pos[genes[j]] = j
}
