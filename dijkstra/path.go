// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// Path rebuilds the source → target vertex sequence from a predecessor table.
//
//   - target == source: returns [source].
//   - prev[target] == NoPredecessor: returns ErrNoPath.
//   - otherwise walks prev back to source and returns the vertices in
//     source-to-target order.
//
// A chain that leaves [0, n), hits NoPredecessor before source, or needs more
// than n steps yields ErrCorruptPredecessors. Index errors yield ErrVertexOutOfRange.
//
// Complexity: O(path length) ≤ O(n).
func Path(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if !core.InRange(source, n) {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexOutOfRange, source, n)
	}
	if !core.InRange(target, n) {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexOutOfRange, target, n)
	}
	if target == source {
		return []int{source}, nil
	}
	if prev[target] == NoPredecessor {
		return nil, fmt.Errorf("%w: %d is unreachable from %d", ErrNoPath, target, source)
	}

	// Collect target → source, then reverse in place.
	path := []int{target}
	for v, steps := target, 0; v != source; steps++ {
		if steps >= n {
			return nil, fmt.Errorf("%w: no return to %d after %d steps", ErrCorruptPredecessors, source, n)
		}
		p := prev[v]
		if !core.InRange(p, n) {
			return nil, fmt.Errorf("%w: prev[%d]=%d", ErrCorruptPredecessors, v, p)
		}
		path = append(path, p)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Order returns the number of vertices covered by the result.
func (r *Result) Order() int {
	return len(r.Dist)
}

// Distance returns the shortest distance to v (Inf if unreachable).
// An index outside [0, n) is a usage error: ErrVertexOutOfRange.
func (r *Result) Distance(v int) (int64, error) {
	if !core.InRange(v, len(r.Dist)) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(r.Dist))
	}

	return r.Dist[v], nil
}

// Reachable reports whether v is a vertex with a finite distance.
func (r *Result) Reachable(v int) bool {
	return core.InRange(v, len(r.Dist)) && r.Dist[v] != Inf
}

// PathTo is Path(r.Prev, r.Source, target).
func (r *Result) PathTo(target int) ([]int, error) {
	return Path(r.Prev, r.Source, target)
}
