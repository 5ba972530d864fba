// SPDX-License-Identifier: MIT

// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on directed graphs with non-negative integer edge weights, where vertices
// are zero-based indices.
//
// Overview:
//
//   - ShortestPaths computes, for every vertex v, the minimum cost from the
//     source (Dist[v]) and the predecessor on one such path (Prev[v]).
//   - Path / Result.PathTo rebuild the source → target vertex sequence.
//   - One engine, two frontier strategies:
//     FrontierHeap (indexed binary heap, decrease-key) for sparse graphs and
//     FrontierLinear (array scan) for small dense ones.
//
// Determinism:
//
//   - Among vertices with equal tentative distance the lowest index is
//     extracted first, in both strategies. Results are reproducible and
//     identical across strategies.
//
// Unreachable vertices:
//
//   - Dist[v] == Inf and Prev[v] == NoPredecessor. This is a normal outcome,
//     not an error; PathTo returns ErrNoPath for them.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyGraph, ErrSourceOutOfRange, ErrNegativeWeight:
//     invalid input to ShortestPaths; computation does not start.
//   - ErrVertexOutOfRange: a query (Distance, Path) named a non-existent vertex.
//   - ErrNoPath: target unreachable.
//   - ErrCorruptPredecessors: the predecessor table is internally inconsistent.
//     This never happens for tables produced by ShortestPaths and signals a bug.
//
// API reference:
//
//	func ShortestPaths(g core.Graph, source int, opts ...Option) (*Result, error)
//	func Path(prev []int, source, target int) ([]int, error)
//
//	  - opts:
//	      • WithFrontier(Strategy):        FrontierHeap (default) or FrontierLinear.
//	      • WithMaxDistance(int64):        explore only vertices with distance ≤ value.
//	      • WithInfEdgeThreshold(int64):   skip any edge whose weight ≥ threshold.
//
// Thread safety:
//
//   - Each call owns its tables and frontier. The graph is only read, so any
//     number of concurrent calls may share one graph as long as nobody
//     mutates it meanwhile.
package dijkstra
