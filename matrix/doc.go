// SPDX-License-Identifier: MIT

// Package matrix is the dense graph representation and its text loader.
//
// Costs is an n × n directed cost matrix that implements core.Graph, so it
// can be handed to the shortest-path engine directly, or converted to a
// sparse *core.AdjacencyList with Costs.AdjacencyList.
//
// "No edge" is explicit: every cell carries a presence bit. The loader maps
// the textual markers inf, ∞, - and x to an absent cell, and additionally
// any numeric value declared with WithSentinel (999 and -1 are common in the
// wild). No numeric sentinel is assumed by default, so a literal 999 is a
// real weight unless you say otherwise.
//
// Text format:
//
//	# comments and blank lines are ignored
//	0   4   inf
//	4   0   8
//	inf 8   0
//
// Self-edges are never produced: diagonal cells are parsed but skipped.
// Negative off-diagonal weights are rejected with ErrNegativeWeight.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
