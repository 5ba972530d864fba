// SPDX-License-Identifier: MIT
//
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on index-addressed graphs.
//
// Options:
//
//	– Frontier:         priority structure used to pick the next vertex
//	                    (FrontierHeap by default, FrontierLinear for dense graphs).
//	– MaxDistance:      optional cap on distances to explore; farther vertices stay at Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph            if the provided graph is nil.
//	– ErrEmptyGraph          if the graph has no vertices.
//	– ErrSourceOutOfRange    if the source index is outside [0, n).
//	– ErrVertexOutOfRange    if a queried vertex index is outside [0, n).
//	– ErrNegativeWeight      if a negative edge weight is detected in the graph.
//	– ErrNoPath              if the target is unreachable from the source.
//	– ErrCorruptPredecessors if a predecessor chain does not lead back to the source.
//	– ErrBadMaxDistance      if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrBadInfThreshold     if InfEdgeThreshold <= 0 (panic from WithInfEdgeThreshold).
//	– ErrUnknownStrategy     for an unrecognized frontier name or value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a graph of order zero; there is no valid source.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrSourceOutOfRange indicates that the source index is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrVertexOutOfRange indicates a distance or path query for a non-existent vertex.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the target has no predecessor and is not the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrCorruptPredecessors indicates a predecessor chain that loops, dangles,
	// or runs longer than the vertex count. This is an engine bug or tampered
	// state, never a property of the input graph.
	ErrCorruptPredecessors = errors.New("dijkstra: corrupt predecessor chain")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnknownStrategy indicates an unrecognized frontier strategy.
	ErrUnknownStrategy = errors.New("dijkstra: unknown frontier strategy")
)

const (
	// Inf is the distance of a vertex not reached from the source.
	Inf int64 = math.MaxInt64

	// NoPredecessor marks the source and unreachable vertices in Result.Prev.
	NoPredecessor = -1
)

// Strategy selects the frontier (priority structure) implementation.
//
// FrontierHeap    – binary heap with decrease-key; O((V + E) log V). Sparse graphs.
// FrontierLinear  – array scan for the minimum;   O(V² + E). Small dense graphs.
//
// Both break ties by the lowest vertex index, so they finalize vertices in
// the same order and produce identical results.
type Strategy int

const (
	// FrontierHeap is the default strategy.
	FrontierHeap Strategy = iota

	// FrontierLinear scans all unfinalized vertices on every extraction.
	FrontierLinear
)

// String returns the lowercase name used by configuration files and flags.
func (s Strategy) String() string {
	switch s {
	case FrontierHeap:
		return "heap"
	case FrontierLinear:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "linear" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap", "":
		return FrontierHeap, nil
	case "linear", "scan":
		return FrontierLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Frontier         – priority structure strategy.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Frontier         Strategy // Priority structure (heap or linear scan)
	MaxDistance      int64    // Maximum distance to explore
	InfEdgeThreshold int64    // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithFrontier selects the frontier strategy. Unknown values panic.
func WithFrontier(s Strategy) Option {
	if s != FrontierHeap && s != FrontierLinear {
		panic(fmt.Sprintf("%v: %d", ErrUnknownStrategy, int(s)))
	}

	return func(o *Options) {
		o.Frontier = s
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are reported as Inf.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the configuration used when no Option is given.
//
// Defaults:
//   - Frontier:         FrontierHeap.
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Frontier:         FrontierHeap,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the output of one ShortestPaths call.
//
// Dist[v] is the minimum cost from Source to v, or Inf if v is unreachable.
// Prev[v] is v's predecessor on one shortest path, or NoPredecessor for the
// source and for unreachable vertices.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}
