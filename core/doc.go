// SPDX-License-Identifier: MIT

// Package core defines the graph representation shared by the loader and the
// shortest-path engine.
//
// Vertices are plain zero-based integers; a Graph of order n owns indices
// 0..n-1 and nothing else. Edges are directed and weighted with int64 costs.
//
// Two implementations satisfy Graph:
//
//   - *core.AdjacencyList: sparse, vertex → ordered slice of outgoing edges.
//   - *matrix.Costs: dense n × n cost matrix with an explicit "no edge" mask.
//
// Both are read-only once built, which is what makes concurrent shortest-path
// queries on a shared graph safe.
//
// Helpers:
//
//	EdgeWeight(g, from, to) (int64, bool) // cheapest parallel edge
//	PathWeight(g, path) (int64, error)    // total cost of a vertex sequence
//	Validate(g) error                     // negative weights / bad heads
//
// Errors:
//
//	ErrBadOrder         - negative vertex count.
//	ErrVertexOutOfRange - index outside [0, n).
//	ErrNegativeWeight   - weight below zero.
//	ErrEdgeNotFound     - consecutive path vertices are not adjacent.
//	ErrNilGraph         - nil Graph passed to a helper.
package core
