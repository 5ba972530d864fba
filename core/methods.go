// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Helpers that work on any Graph implementation.

package core

import (
	"fmt"
	"math"
)

// EdgeWeight returns the cheapest weight among edges from → to.
// ok is false when no such edge exists or an index is out of range.
// Complexity: O(deg(from)).
func EdgeWeight(g Graph, from, to int) (w int64, ok bool) {
	if g == nil {
		return 0, false
	}
	w = math.MaxInt64
	for _, e := range g.Neighbors(from) {
		if e.To == to && e.Weight < w {
			w, ok = e.Weight, true
		}
	}
	if !ok {
		return 0, false
	}

	return w, true
}

// PathWeight sums the cheapest edge weight between each consecutive pair of
// path. A single-vertex path weighs 0.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexOutOfRange for an index outside [0, Order()), or an empty path.
//   - ErrEdgeNotFound if two consecutive vertices are not adjacent.
//
// Complexity: O(Σ deg(path[i])).
func PathWeight(g Graph, path []int) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrVertexOutOfRange)
	}
	n := g.Order()
	for _, v := range path {
		if !InRange(v, n) {
			return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, n)
		}
	}

	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := EdgeWeight(g, path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}

// Validate scans every edge of g and reports the first one with an
// out-of-range head or a negative weight.
// Complexity: O(V + E).
func Validate(g Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.Order()
	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			if !InRange(e.To, n) {
				return fmt.Errorf("%w: edge %d→%d", ErrVertexOutOfRange, u, e.To)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}
