// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/builder"
	"github.com/katalvlaran/spath/core"
)

// arcs flattens g's edges into "from→to" pairs for comparison.
func arcs(g *core.AdjacencyList) [][2]int {
	var out [][2]int
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.From, e.To})
	}

	return out
}

func TestBuild_Topologies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cons  builder.Constructor
		opts  []builder.Option
		order int
		edges int
	}{
		{"path single", builder.Path(1), nil, 1, 0},
		{"path", builder.Path(5), nil, 5, 4},
		{"path symmetric", builder.Path(5), []builder.Option{builder.WithSymmetric()}, 5, 8},
		{"cycle", builder.Cycle(4), nil, 4, 4},
		{"complete", builder.Complete(4), nil, 4, 12},
		{"grid", builder.Grid(2, 3), nil, 6, 14},
		{"grid symmetric is still one pair per link", builder.Grid(2, 3), []builder.Option{builder.WithSymmetric()}, 6, 14},
		{"sparse p=0", builder.RandomSparse(6, 0), nil, 6, 0},
		{"sparse p=1", builder.RandomSparse(6, 1), nil, 6, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.cons, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.order, g.Order())
			assert.Equal(t, tc.order, tc.cons.Order())
			assert.Equal(t, tc.edges, g.EdgeCount())
			require.NoError(t, core.Validate(g))
		})
	}
}

func TestBuild_PathShape(t *testing.T) {
	g, err := builder.Build(builder.Path(4), builder.WithWeightFn(builder.ConstantWeightFn(3)))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, arcs(g))

	w, err := core.PathWeight(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(9), w)
}

func TestBuild_GridNeighbors(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	// centre cell touches all four sides
	var to []int
	for _, e := range g.Neighbors(4) {
		to = append(to, e.To)
	}
	assert.ElementsMatch(t, []int{1, 3, 5, 7}, to)

	// corner cell touches two
	assert.Len(t, g.Neighbors(0), 2)
}

func TestBuild_Deterministic(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(0, 50))}
	}
	a, err := builder.Build(builder.RandomSparse(40, 0.2), opts()...)
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(40, 0.2), opts()...)
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Greater(t, a.EdgeCount(), 0)
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(0))
		assert.LessOrEqual(t, e.Weight, int64(50))
	}
}

func TestBuild_Errors(t *testing.T) {
	cases := map[string]struct {
		cons builder.Constructor
		opts []builder.Option
		want error
	}{
		"path empty":       {builder.Path(0), nil, builder.ErrTooFewVertices},
		"cycle too short":  {builder.Cycle(2), nil, builder.ErrTooFewVertices},
		"complete empty":   {builder.Complete(0), nil, builder.ErrTooFewVertices},
		"grid zero rows":   {builder.Grid(0, 4), nil, builder.ErrTooFewVertices},
		"sparse empty":     {builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		"sparse bad p":     {builder.RandomSparse(3, 1.5), []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		"sparse no rng":    {builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		"zero constructor": {builder.Constructor{}, nil, builder.ErrNilConstructor},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := builder.Build(tc.cons, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 2) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(4), builder.ConstantWeightFn(4)(nil))

	u := builder.UniformWeightFn(2, 5)
	assert.Equal(t, int64(2), u(nil), "nil rng falls back to min")
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := u(rng)
		require.GreaterOrEqual(t, w, int64(2))
		require.LessOrEqual(t, w, int64(5))
	}
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 3)(rng))
}
