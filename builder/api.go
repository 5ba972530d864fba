// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/spath/core"
)

// Constructor is a deferred topology: its vertex count is fixed when it is
// created, its arcs are emitted by Build.
type Constructor struct {
	method string
	order  int
	check  func(cfg config) error
	emit   func(add func(u, v int) error, cfg config) error
}

// Order reports how many vertices the constructor produces.
func (c Constructor) Order() int { return c.order }

// Build materializes c under opts.
//
// Complexity: O(V + E) plus the constructor's own trial cost
// (O(V²) for Complete and RandomSparse).
func Build(c Constructor, opts ...Option) (*core.AdjacencyList, error) {
	if c.emit == nil {
		return nil, ErrNilConstructor
	}
	cfg := newConfig(opts...)
	if c.check != nil {
		if err := c.check(cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	g, err := core.NewAdjacencyList(c.order)
	if err != nil {
		return nil, builderErrorf(c.method, "%w", err)
	}
	add := func(u, v int) error {
		if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
			return builderErrorf(c.method, "AddEdge(%d→%d): %w", u, v, err)
		}
		if cfg.symmetric {
			if err := g.AddEdge(v, u, cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(c.method, "AddEdge(%d→%d): %w", v, u, err)
			}
		}

		return nil
	}
	if err := c.emit(add, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// sized returns a Constructor whose check rejects n < min.
func sized(method string, n, min int, emit func(add func(u, v int) error, cfg config) error) Constructor {
	return Constructor{
		method: method,
		order:  n,
		check: func(config) error {
			if n < min {
				return builderErrorf(method, "n=%d < min=%d: %w", n, min, ErrTooFewVertices)
			}
			return nil
		},
		emit: emit,
	}
}
