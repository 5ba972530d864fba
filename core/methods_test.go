package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/core"
)

// diamond builds 0→1(1), 0→2(4), 1→3(2), 2→3(1), plus a parallel 0→1(3).
func diamond(t *testing.T) *core.AdjacencyList {
	t.Helper()
	g, err := core.NewAdjacencyList(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(1, 3, 2))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 3))

	return g
}

func TestEdgeWeight(t *testing.T) {
	g := diamond(t)

	w, ok := core.EdgeWeight(g, 0, 1)
	require.True(t, ok)
	require.Equal(t, int64(1), w, "cheapest parallel edge wins")

	_, ok = core.EdgeWeight(g, 3, 0)
	require.False(t, ok)

	_, ok = core.EdgeWeight(nil, 0, 1)
	require.False(t, ok)
}

func TestPathWeight(t *testing.T) {
	g := diamond(t)

	w, err := core.PathWeight(g, []int{0, 1, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), w)

	w, err = core.PathWeight(g, []int{2})
	require.NoError(t, err)
	require.Zero(t, w)

	_, err = core.PathWeight(g, []int{0, 3})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = core.PathWeight(g, []int{0, 7})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.PathWeight(g, nil)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.PathWeight(nil, []int{0})
	require.ErrorIs(t, err, core.ErrNilGraph)
}

// badGraph lets Validate see edges AdjacencyList would have rejected.
type badGraph struct {
	edges []core.Edge
}

func (b badGraph) Order() int { return 2 }

func (b badGraph) Neighbors(u int) []core.Edge {
	var res []core.Edge
	for _, e := range b.edges {
		if e.From == u {
			res = append(res, e)
		}
	}

	return res
}

func TestValidate(t *testing.T) {
	require.NoError(t, core.Validate(diamond(t)))
	require.ErrorIs(t, core.Validate(nil), core.ErrNilGraph)

	neg := badGraph{edges: []core.Edge{{From: 0, To: 1, Weight: -1}}}
	require.ErrorIs(t, core.Validate(neg), core.ErrNegativeWeight)

	dangling := badGraph{edges: []core.Edge{{From: 1, To: 5, Weight: 1}}}
	require.ErrorIs(t, core.Validate(dangling), core.ErrVertexOutOfRange)
}

func TestInRange(t *testing.T) {
	require.True(t, core.InRange(0, 1))
	require.False(t, core.InRange(1, 1))
	require.False(t, core.InRange(-1, 3))
}
