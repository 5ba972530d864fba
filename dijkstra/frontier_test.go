package dijkstra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(f frontier) (order []int, keys []int64) {
	for f.Len() > 0 {
		v, d := f.popMin()
		order = append(order, v)
		keys = append(keys, d)
	}

	return order, keys
}

func TestFrontiers_TieBreakLowestIndex(t *testing.T) {
	for _, s := range []Strategy{FrontierHeap, FrontierLinear} {
		t.Run(s.String(), func(t *testing.T) {
			f := newFrontier(s, 5)
			for _, v := range []int{4, 2, 0, 3, 1} {
				f.push(v, 7)
			}
			f.decrease(3, 1)
			f.decrease(4, 1)

			order, keys := drain(f)
			require.Equal(t, []int{3, 4, 0, 1, 2}, order)
			require.Equal(t, []int64{1, 1, 7, 7, 7}, keys)
		})
	}
}

func TestFrontiers_DecreaseIgnoresIncreaseAndAbsent(t *testing.T) {
	for _, s := range []Strategy{FrontierHeap, FrontierLinear} {
		t.Run(s.String(), func(t *testing.T) {
			f := newFrontier(s, 3)
			f.push(0, 5)
			f.push(1, 3)
			f.decrease(0, 9) // larger key: no-op
			f.decrease(2, 0) // never pushed: no-op

			require.Equal(t, 2, f.Len())
			order, keys := drain(f)
			require.Equal(t, []int{1, 0}, order)
			require.Equal(t, []int64{3, 5}, keys)

			f.decrease(1, 0) // already popped: no-op
			require.Zero(t, f.Len())
		})
	}
}

func TestFrontiers_InfKeysOrdered(t *testing.T) {
	for _, s := range []Strategy{FrontierHeap, FrontierLinear} {
		t.Run(s.String(), func(t *testing.T) {
			f := newFrontier(s, 4)
			for v := 0; v < 4; v++ {
				f.push(v, Inf)
			}
			f.decrease(2, 0)
			order, _ := drain(f)
			require.Equal(t, []int{2, 0, 1, 3}, order)
		})
	}
}

func TestHeapFrontier_PositionsTracked(t *testing.T) {
	h := newHeapFrontier(6)
	for v := 5; v >= 0; v-- {
		h.push(v, int64(10*v))
	}
	h.decrease(5, 1)
	for i, v := range h.verts {
		require.Equal(t, i, h.pos[v], "pos out of sync for vertex %d", v)
	}

	v, d := h.popMin()
	require.Equal(t, 0, v)
	require.Zero(t, d)
	require.Equal(t, -1, h.pos[0])

	v, d = h.popMin()
	require.Equal(t, 5, v)
	require.Equal(t, int64(1), d)

	// re-pushing a queued vertex updates its key in place
	h.push(4, 2)
	require.Equal(t, 4, h.Len())
	v, _ = h.popMin()
	require.Equal(t, 4, v)
}
