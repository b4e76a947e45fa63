package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gatsp/matrix"
)

// roundScale fixes the precision of reported tour costs.
const roundScale = 1e9

// round1e9 stabilizes a floating-point cost to 1e-9 so that equal tours
// priced along different summation paths compare equal.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Problem is a CostGraph compiled for one (start, stop) pair.
//
// Vertices are addressed by their position in CostGraph.Vertices(); the cost
// table is a dense matrix where +Inf marks a pair the graph could not price.
// A Problem is immutable after NewProblem and may be shared read-only by any
// number of Tours and goroutines.
type Problem struct {
	adj       *matrix.Adjacency
	n         int
	start     int
	end       int
	roundTrip bool
	tourLen   int
	interior  []int // ascending vertex indices excluding the endpoints
}

// NewProblem compiles g for tours from start to stop. An empty stop, or stop
// equal to start, selects a round trip.
//
// Errors:
//   - ErrInvalidConfiguration: nil graph, unknown endpoint, unusable costs.
//   - ErrDegenerateGraph: fewer than two vertices.
//
// Complexity: O(V²) time and memory.
func NewProblem(g CostGraph, start, stop string) (*Problem, error) {
	if g == nil {
		return nil, fmt.Errorf("NewProblem: nil graph: %w", ErrInvalidConfiguration)
	}
	if len(g.Vertices()) < 2 {
		return nil, fmt.Errorf("NewProblem: %d vertices: %w", len(g.Vertices()), ErrDegenerateGraph)
	}

	adj, err := matrix.NewAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("NewProblem: %w: %w", ErrInvalidConfiguration, err)
	}

	p := &Problem{adj: adj, n: adj.Size()}
	if p.start, err = adj.Index(start); err != nil {
		return nil, fmt.Errorf("NewProblem: start %q: %w", start, ErrInvalidConfiguration)
	}

	p.roundTrip = stop == "" || stop == start
	if p.roundTrip {
		p.end = p.start
		p.tourLen = p.n + 1
	} else {
		if p.end, err = adj.Index(stop); err != nil {
			return nil, fmt.Errorf("NewProblem: stop %q: %w", stop, ErrInvalidConfiguration)
		}
		p.tourLen = p.n
	}

	p.interior = make([]int, 0, p.n)
	var v int
	for v = 0; v < p.n; v++ {
		if v != p.start && v != p.end {
			p.interior = append(p.interior, v)
		}
	}

	return p, nil
}

// Size returns the number of vertices.
func (p *Problem) Size() int { return p.n }

// Vertices returns the vertex IDs in index order.
func (p *Problem) Vertices() []string {
	out := make([]string, p.n)
	copy(out, p.adj.IDs)

	return out
}

// Start returns the first vertex of every tour.
func (p *Problem) Start() string { return p.adj.IDs[p.start] }

// Stop returns the last vertex of every tour.
func (p *Problem) Stop() string { return p.adj.IDs[p.end] }

// RoundTrip reports whether tours return to Start.
func (p *Problem) RoundTrip() bool { return p.roundTrip }

// TourLen returns the number of genes in every tour.
func (p *Problem) TourLen() int { return p.tourLen }

// InteriorLen returns the number of permutable genes.
func (p *Problem) InteriorLen() int { return len(p.interior) }

// distinctTours returns min(InteriorLen()!, limit).
//
// Complexity: O(min(InteriorLen(), log limit)).
func (p *Problem) distinctTours(limit int) int {
	var (
		count = 1
		k     int
	)
	for k = 2; k <= len(p.interior); k++ {
		if count > limit/k {
			return limit
		}
		count *= k
	}
	if count > limit {
		return limit
	}

	return count
}

// cost returns the cost i→j; +Inf when the graph has no such edge.
func (p *Problem) cost(i, j int) float64 {
	w, err := p.adj.Mat.At(i, j)
	if err != nil {
		return math.Inf(1)
	}

	return w
}

// fitness sums the costs along genes.
// Any unpriced pair yields ErrMissingEdge naming the pair.
//
// Complexity: O(len(genes)).
func (p *Problem) fitness(genes []int) (float64, error) {
	var (
		sum float64
		w   float64
		i   int
	)
	for i = 0; i+1 < len(genes); i++ {
		w = p.cost(genes[i], genes[i+1])
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("%s→%s: %w", p.adj.IDs[genes[i]], p.adj.IDs[genes[i+1]], ErrMissingEdge)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// newTour prices genes and takes ownership of the slice.
func (p *Problem) newTour(genes []int) (Tour, error) {
	f, err := p.fitness(genes)
	if err != nil {
		return Tour{}, err
	}

	return Tour{p: p, genes: genes, fitness: f}, nil
}

// assemble builds a full gene slice from an interior.
func (p *Problem) assemble(interior []int) []int {
	genes := make([]int, 0, p.tourLen)
	genes = append(genes, p.start)
	genes = append(genes, interior...)

	return append(genes, p.end)
}

// NewTour builds a Tour from vertex IDs, e.g. ["0","3","2","1","0"].
//
// Errors:
//   - ErrTourMismatch: unknown ID or a sequence violating the tour shape.
//   - ErrMissingEdge: an adjacent pair has no cost.
func (p *Problem) NewTour(ids []string) (Tour, error) {
	genes, err := p.indices(ids)
	if err != nil {
		return Tour{}, err
	}
	if err = p.validateGenes(genes); err != nil {
		return Tour{}, err
	}

	return p.newTour(genes)
}

// ValidateTour checks that ids form a tour of p without pricing it.
func (p *Problem) ValidateTour(ids []string) error {
	genes, err := p.indices(ids)
	if err != nil {
		return err
	}

	return p.validateGenes(genes)
}

// indices maps vertex IDs to matrix indices.
func (p *Problem) indices(ids []string) ([]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty tour: %w", ErrTourMismatch)
	}
	genes := make([]int, len(ids))
	var (
		i   int
		id  string
		err error
	)
	for i, id = range ids {
		if genes[i], err = p.adj.Index(id); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", id, ErrTourMismatch)
		}
	}

	return genes, nil
}

// RandomTour draws a uniformly random interior with Fisher–Yates.
//
// Complexity: O(n).
func (p *Problem) RandomTour(rng *rand.Rand) (Tour, error) {
	interior := make([]int, len(p.interior))
	copy(interior, p.interior)
	shuffleIntsInPlace(interior, rng)

	return p.newTour(p.assemble(interior))
}
