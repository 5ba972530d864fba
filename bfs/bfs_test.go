package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/spath/bfs"
	"github.com/katalvlaran/spath/builder"
	"github.com/katalvlaran/spath/core"
	"github.com/katalvlaran/spath/matrix"
)

// mustList builds an order-n adjacency list from (from, to, w) triples.
func mustList(t *testing.T, n int, edges ...[3]int) *core.AdjacencyList {
	t.Helper()
	g, err := core.NewAdjacencyList(n)
	if err != nil {
		t.Fatalf("NewAdjacencyList(%d): %v", n, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], int64(e[2])); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustList(t, 2)
	for _, start := range []int{-1, 2} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, bfs.ErrStartOutOfRange) {
			t.Errorf("start %d: want ErrStartOutOfRange, got %v", start, err)
		}
	}
	var typedNil *core.AdjacencyList
	if _, err := bfs.BFS(typedNil, 0); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("typed nil list: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(mustList(t, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth[0] != 0 || res.Parent[0] != bfs.Unreached {
		t.Errorf("start: Depth=%d Parent=%d", res.Depth[0], res.Parent[0])
	}
}

// TestBFS_DirectedReach checks that arcs are followed one way only.
func TestBFS_DirectedReach(t *testing.T) {
	// 0→1→2, 3→0; 3 is unreachable from 0
	g := mustList(t, 4, [3]int{0, 1, 5}, [3]int{1, 2, 5}, [3]int{3, 0, 5})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached(3) {
		t.Errorf("vertex 3 must be unreached")
	}
	if res.Reached(9) {
		t.Errorf("out-of-range vertex reported reached")
	}
	path, err := res.PathTo(2)
	if err != nil || !reflect.DeepEqual(path, []int{0, 1, 2}) {
		t.Errorf("PathTo(2) = %v, %v", path, err)
	}
	if _, err := res.PathTo(3); err == nil {
		t.Errorf("PathTo(3): want error")
	}
}

// TestBFS_FewestHops checks depths on a grid, where hop count is Manhattan distance.
func TestBFS_FewestHops(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if got := res.Depth[r*4+c]; got != r+c {
				t.Errorf("Depth(%d,%d) = %d; want %d", r, c, got, r+c)
			}
		}
	}
}

// TestBFS_MaxDepth verifies the search stops beyond the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g, err := builder.Build(builder.Path(6))
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_FilterEdge drops the expensive shortcut.
func TestBFS_FilterEdge(t *testing.T) {
	g := mustList(t, 3, [3]int{0, 2, 100}, [3]int{0, 1, 1}, [3]int{1, 2, 1})
	res, err := bfs.BFS(g, 0, bfs.WithFilterEdge(func(_, _ int, w int64) bool { return w < 50 }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Depth[2] != 2 || res.Parent[2] != 1 {
		t.Errorf("vertex 2: Depth=%d Parent=%d; want 2 via 1", res.Depth[2], res.Parent[2])
	}
}

// TestBFS_OnVisitError aborts the walk.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	g := matrix.Example()
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 7 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want stop, got %v", err)
	}
}

// TestBFS_Cancelled honors a done context.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(matrix.Example(), 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
