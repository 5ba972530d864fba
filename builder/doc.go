// Package builder generates deterministic index-addressed graphs for tests,
// benchmarks and demos of the shortest-path engine.
//
// A Constructor describes a topology (Path, Cycle, Complete, Grid,
// RandomSparse); Build resolves functional options (seed, weight function,
// symmetric arcs) and materializes it as a *core.AdjacencyList:
//
//	g, err := builder.Build(builder.RandomSparse(1000, 0.01),
//		builder.WithSeed(42),
//		builder.WithWeightFn(builder.UniformWeightFn(1, 100)))
//
// Guarantees:
//
//   - Same constructor, options and seed produce the same graph, edge for edge.
//   - Option constructors panic on meaningless input; Build never panics and
//     returns sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the constructor name.
//   - Weights are always ≥ 0, so every generated graph is a valid
//     dijkstra.ShortestPaths input.
package builder
