// SPDX-License-Identifier: MIT

package builder

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns the chain 0→1→…→n-1.
// Requires n ≥ 1; a single vertex has no arcs.
func Path(n int) Constructor {
	return sized(methodPath, n, minPathNodes, func(add func(u, v int) error, _ config) error {
		for i := 0; i+1 < n; i++ {
			if err := add(i, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

// Cycle returns Path(n) closed by n-1→0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return sized(methodCycle, n, minCycleNodes, func(add func(u, v int) error, _ config) error {
		for i := 0; i < n; i++ {
			if err := add(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	})
}
