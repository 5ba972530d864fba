// Package spath computes single-source shortest paths over small weighted
// digraphs addressed by vertex index.
//
// 🚀 What is spath?
//
//	A compact engine plus the plumbing around it:
//		• Dijkstra with a pluggable frontier (indexed binary heap or linear scan)
//		• Cost matrices: parse text, mark missing edges, expose them as a graph
//		• Path reconstruction with cycle-proof predecessor walks
//		• Reports as plain text, a styled terminal table, or JSON
//		• A CLI with YAML config and an interactive prompt
//
// Under the hood the work is split into subpackages:
//
//	core/       Edge, the Graph interface and the sparse AdjacencyList
//	matrix/     dense Costs matrix, text parser, built-in example graph
//	dijkstra/   ShortestPaths, Result, Path
//	bfs/        unweighted reachability over the same Graph interface
//	builder/    deterministic generators (Path, Cycle, Complete, Grid, RandomSparse)
//	report/     text, table and JSON renderings of a Result
//	config/     YAML defaults for the CLI
//	cmd/spath/  the command-line front end
//
// Quick ASCII example:
//
//	    0 ──4──▶ 1 ──8──▶ 2
//	    │                 ▲
//	    8                 │ 2
//	    ▼                 │
//	    7 ──1──▶ 6 ··· ──▶ 8
//
// Distances are int64 and non-negative; dijkstra.Inf marks "unreachable".
//
//	go install github.com/katalvlaran/spath/cmd/spath@latest
package spath
