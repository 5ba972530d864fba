// SPDX-License-Identifier: MIT

package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns an Erdős–Rényi-style digraph: each ordered pair
// (u, v), u ≠ v, is an arc independently with probability p.
//
// Trials run u asc then v asc, so a fixed seed reproduces the graph.
// An RNG is required only when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return Constructor{
		method: methodRandomSparse,
		order:  n,
		check: func(cfg config) error {
			if n < minRandomSparseVertices {
				return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w",
					n, minRandomSparseVertices, ErrTooFewVertices)
			}
			if p < probMin || p > probMax {
				return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
					p, probMin, probMax, ErrInvalidProbability)
			}
			if cfg.rng == nil && p > probMin && p < probMax {
				return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
			}
			return nil
		},
		emit: func(add func(u, v int) error, cfg config) error {
			if p == probMin {
				return nil
			}
			for u := 0; u < n; u++ {
				for v := 0; v < n; v++ {
					if u == v {
						continue
					}
					if p < probMax && cfg.rng.Float64() >= p {
						continue
					}
					if err := add(u, v); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
