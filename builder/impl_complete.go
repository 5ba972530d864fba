// SPDX-License-Identifier: MIT

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns every ordered pair u→v with u ≠ v, emitted u asc then v asc.
// WithSymmetric is redundant here and doubles every arc.
func Complete(n int) Constructor {
	return sized(methodComplete, n, minCompleteNodes, func(add func(u, v int) error, _ config) error {
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := add(u, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
