// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Sparse Graph implementation: vertex → ordered slice of outgoing edges.
// Determinism:
//   - Neighbors(u) preserves insertion order.
//   - Edges() walks tails ascending, then insertion order.

package core

import "fmt"

// AdjacencyList stores, for every vertex, the ordered sequence of its
// outgoing edges. The zero value is an empty graph of order 0.
//
// Mutation (AddEdge) is not synchronized; build the list first, then share it
// read-only. A nil *AdjacencyList reads as a graph of order 0.
type AdjacencyList struct {
	out   [][]Edge // out[u] = outgoing edges of u, insertion order
	edges int      // total number of stored edges
}

// NewAdjacencyList creates an edgeless graph with n vertices.
// Complexity: O(n).
func NewAdjacencyList(n int) (*AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadOrder, n)
	}

	return &AdjacencyList{out: make([][]Edge, n)}, nil
}

// Order returns the number of vertices.
func (l *AdjacencyList) Order() int {
	if l == nil {
		return 0
	}

	return len(l.out)
}

// EdgeCount returns the number of stored edges.
func (l *AdjacencyList) EdgeCount() int {
	if l == nil {
		return 0
	}

	return l.edges
}

// AddEdge appends the directed edge from → to with weight w.
//
// Self-loops carry no information for shortest paths and are ignored:
// AddEdge(v, v, w) returns nil without storing anything. Parallel edges are
// kept; the cheaper one wins during relaxation.
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is outside [0, Order()).
//   - ErrNegativeWeight if w < 0.
//   - ErrNilGraph on a nil receiver.
//
// Complexity: O(1) amortized.
func (l *AdjacencyList) AddEdge(from, to int, w int64) error {
	if l == nil {
		return ErrNilGraph
	}
	n := len(l.out)
	if !InRange(from, n) || !InRange(to, n) {
		return fmt.Errorf("%w: edge %d→%d in graph of order %d", ErrVertexOutOfRange, from, to, n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}
	if from == to {
		return nil
	}

	l.out[from] = append(l.out[from], Edge{From: from, To: to, Weight: w})
	l.edges++

	return nil
}

// Neighbors returns a copy of u's outgoing edges in insertion order,
// or nil if u is out of range.
// Complexity: O(deg(u)).
func (l *AdjacencyList) Neighbors(u int) []Edge {
	if l == nil || !InRange(u, len(l.out)) || len(l.out[u]) == 0 {
		return nil
	}
	res := make([]Edge, len(l.out[u]))
	copy(res, l.out[u])

	return res
}

// Edges returns every stored edge, tails ascending, then insertion order.
// Complexity: O(V + E).
func (l *AdjacencyList) Edges() []Edge {
	if l == nil {
		return nil
	}
	res := make([]Edge, 0, l.edges)
	for _, bucket := range l.out {
		res = append(res, bucket...)
	}

	return res
}
