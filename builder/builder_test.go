package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/builder"
	"github.com/katalvlaran/gatsp/core"
)

// TestComplete_Undirected checks vertex IDs, pair count and mirroring.
func TestComplete_Undirected(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformIntWeightFn(1, 100))},
		builder.Complete(5),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2", "3", "4"}, g.Vertices())
	require.Equal(t, 20, g.EdgeCount()) // 10 pairs, mirrored

	for _, u := range g.Vertices() {
		for _, v := range g.Vertices() {
			if u == v {
				continue
			}
			uv, err := g.Cost(u, v)
			require.NoError(t, err)
			vu, err := g.Cost(v, u)
			require.NoError(t, err)
			assert.Equal(t, uv, vu)
			assert.GreaterOrEqual(t, uv, 1.0)
			assert.LessOrEqual(t, uv, 100.0)
			assert.Equal(t, float64(int(uv)), uv, "integer costs")
		}
	}
}

// TestComplete_DirectedAsymmetric checks independent draws per direction.
func TestComplete_DirectedAsymmetric(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 1000))},
		builder.Complete(6),
	)
	require.NoError(t, err)
	require.Equal(t, 30, g.EdgeCount())

	asym := 0
	for _, u := range g.Vertices() {
		for _, v := range g.Vertices() {
			if u >= v {
				continue
			}
			uv, _ := g.Cost(u, v)
			vu, _ := g.Cost(v, u)
			if uv != vu {
				asym++
			}
		}
	}
	assert.Greater(t, asym, 0)
}

// TestComplete_Determinism anchors identical graphs for equal seeds.
func TestComplete_Determinism(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 10))},
			builder.Complete(7),
		)
		require.NoError(t, err)
		return g
	}
	a, b, c := build(11), build(11), build(12)

	same, differs := true, false
	for _, u := range a.Vertices() {
		for _, v := range a.Vertices() {
			if u == v {
				continue
			}
			x, _ := a.Cost(u, v)
			y, _ := b.Cost(u, v)
			z, _ := c.Cost(u, v)
			same = same && x == y
			differs = differs || x != z
		}
	}
	assert.True(t, same)
	assert.True(t, differs)
}

// TestRandom_Connectivity covers the presence draw and its extremes.
func TestRandom_Connectivity(t *testing.T) {
	full, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, builder.Random(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 30, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, builder.Random(6, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, 6, empty.VertexCount())

	half, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(5)},
		builder.Random(40, 0.5),
	)
	require.NoError(t, err)
	// 1560 ordered pairs at p=0.5
	assert.InDelta(t, 780, half.EdgeCount(), 120)
}

// TestConstructorErrors checks sentinel errors and wrapping.
func TestConstructorErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Complete(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Random(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRNG)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Random(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Complete(3)), builder.ErrConstructFailed)

	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Complete(3)))
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

// TestIDFns covers the ID schemes and their panics.
func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "007", builder.PaddedIDFn(3)(7))
	assert.Equal(t, "1234", builder.PaddedIDFn(2)(1234))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AAA", builder.ExcelColumnIDFn(702))
	assert.Equal(t, 1, builder.WidthFor(10))
	assert.Equal(t, 2, builder.WidthFor(11))
	assert.Equal(t, 3, builder.WidthFor(101))

	assert.Panics(t, func() { builder.PaddedIDFn(0) })
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

// TestWeightFns covers cost distributions and their panics.
func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 9)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformIntWeightFn(2, 9)(nil))

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithWeightFn(builder.UniformWeightFn(4, 4))},
		builder.Complete(3),
	)
	require.NoError(t, err)
	w, err := g.Cost("0", "2")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(-1, 4) })
}
