// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with FrontierHeap, O(V² + E) with FrontierLinear.
//   - Space: O(V) for the distance/predecessor tables and the frontier.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Every vertex enters the frontier at initialization; improvements use a true
//     decrease-key, so each vertex is extracted exactly once.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - relax never stores a distance above MaxDistance, so once the minimum key
//     in the frontier is Inf every vertex still queued is unreachable under the
//     configuration and the loop stops.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// ShortestPaths computes shortest distances and predecessors from source to
// every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. source must be in [0, n) (ErrSourceOutOfRange).
//  4. No edge in g can have negative weight (ErrNegativeWeight) or point
//     outside the graph (ErrVertexOutOfRange).
//
// Unreachable vertices are not an error: they keep Dist = Inf and
// Prev = NoPredecessor.
//
// The graph is only read, so concurrent calls on the same graph are safe.
func ShortestPaths(g core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if !core.InRange(source, n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// 3) Pre-scan all edges. Fail fast with ErrNegativeWeight / ErrVertexOutOfRange,
	//    keeping the core sentinel reachable through errors.Is as well.
	if err := core.Validate(g); err != nil {
		if isNegative(err) {
			return nil, fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		}

		return nil, fmt.Errorf("%w: %w", ErrVertexOutOfRange, err)
	}

	// 4) Run
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		done:    make([]bool, n),
		fr:      newFrontier(cfg.Frontier, n),
	}
	r.init(source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Graph // The input graph; read-only within Dijkstra.
	options Options    // Configuration options (frontier, thresholds).
	dist    []int64    // dist[v] = current best distance from source.
	prev    []int      // prev[v] = predecessor on the current best path.
	done    []bool     // done[v] = v has been extracted and is final.
	fr      frontier   // Unfinalized vertices keyed by dist.
}

// init sets dist to Inf (0 for the source), clears predecessors and queues every vertex.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Inf
		r.prev[v] = NoPredecessor
	}
	r.dist[source] = 0

	for v := range r.dist {
		r.fr.push(v, r.dist[v])
	}
}

// process is the core loop: extract the closest unfinalized vertex, finalize
// it, relax its outgoing edges. Non-negative weights guarantee that an
// extracted distance can never be improved later.
func (r *runner) process() {
	for r.fr.Len() > 0 {
		u, d := r.fr.popMin()
		if d == Inf {
			break
		}
		r.done[u] = true
		r.relax(u)
	}
}

// relax examines each edge outgoing from u and improves its unfinalized heads.
// Assumes r.dist[u] is final and finite.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		v, w := e.To, e.Weight
		if r.done[v] {
			continue
		}

		// Skip any edge that is marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// du + w would overflow past Inf; such a path can never beat dist[v].
		if w > Inf-du {
			continue
		}
		alt := du + w
		if alt > r.options.MaxDistance {
			continue
		}

		// Strict “<” keeps the first-found predecessor among equal-cost paths.
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		r.fr.decrease(v, alt)
	}
}

func isNegative(err error) bool {
	return errors.Is(err, core.ErrNegativeWeight)
}
