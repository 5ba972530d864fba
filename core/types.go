// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph contract, Edge value type and the core sentinel errors.
// Policy:
//   - Vertices are dense zero-based indices in [0, Order()).
//   - Edges are directed and carry a non-negative int64 weight.
//   - Implementations must not mutate themselves on read (Order/Neighbors),
//     so one Graph can be shared by concurrent readers.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates a negative vertex count was requested.
	ErrBadOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEdgeNotFound indicates two consecutive path vertices are not adjacent.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilGraph indicates a nil Graph was passed to a helper.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// From is the tail vertex index.
	From int

	// To is the head vertex index.
	To int

	// Weight is the traversal cost. Always ≥ 0 for edges produced by this module.
	Weight int64
}

// Graph is the read-only view shortest-path algorithms operate on.
//
// Order reports the number of vertices n; valid indices are 0..n-1.
// Neighbors returns the outgoing edges of u in a deterministic order.
// The returned slice is owned by the caller. Neighbors of an out-of-range
// vertex is nil.
type Graph interface {
	Order() int
	Neighbors(u int) []Edge
}

// InRange reports whether v is a valid vertex index for a graph of order n.
func InRange(v, n int) bool {
	return v >= 0 && v < n
}
