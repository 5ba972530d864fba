// SPDX-License-Identifier: MIT

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a rows×cols 4-neighborhood lattice. Cell (r, c) is vertex
// r*cols + c; every cell links to its right and bottom neighbor in both
// directions, each arc drawing its own weight.
func Grid(rows, cols int) Constructor {
	return Constructor{
		method: methodGrid,
		order:  rows * cols,
		check: func(config) error {
			if rows < minGridDim || cols < minGridDim {
				return builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
					rows, cols, minGridDim, ErrTooFewVertices)
			}
			return nil
		},
		emit: func(add func(u, v int) error, cfg config) error {
			both := func(u, v int) error {
				if err := add(u, v); err != nil {
					return err
				}
				if cfg.symmetric {
					return nil
				}
				return add(v, u)
			}
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					u := r*cols + c
					if c+1 < cols {
						if err := both(u, u+1); err != nil {
							return err
						}
					}
					if r+1 < rows {
						if err := both(u, u+cols); err != nil {
							return err
						}
					}
				}
			}
			return nil
		},
	}
}
