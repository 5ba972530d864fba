// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: Costs, a row-major n × n cost matrix implementing core.Graph.
// Policy:
//   - Absence of an edge lives in a presence mask, not in a magic weight,
//     so every int64 ≥ 0 is a legal cost.
//   - Indexers return ErrOutOfRange, never panic.

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/spath/core"
)

// costsErrorf wraps an underlying error with Costs method context.
func costsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Costs.%s(%d,%d): %w", method, row, col, err)
}

// Costs is a dense directed cost matrix. Cell (i, j) holds the weight of
// edge i → j when present. The diagonal may be stored but never yields an edge.
type Costs struct {
	n   int     // order
	w   []int64 // flat weights, length n*n
	has []bool  // has[k] reports whether w[k] is an edge
}

// NewCosts creates an n × n matrix with no edges.
// Complexity: O(n²) time and memory.
func NewCosts(n int) (*Costs, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadShape, n)
	}

	return &Costs{n: n, w: make([]int64, n*n), has: make([]bool, n*n)}, nil
}

// Order returns n.
func (c *Costs) Order() int {
	if c == nil {
		return 0
	}

	return c.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (c *Costs) indexOf(method string, row, col int) (int, error) {
	if c == nil {
		return 0, costsErrorf(method, row, col, ErrNilMatrix)
	}
	if !core.InRange(row, c.n) || !core.InRange(col, c.n) {
		return 0, costsErrorf(method, row, col, ErrOutOfRange)
	}

	return row*c.n + col, nil
}

// At returns the weight of (row, col) and whether an edge is present there.
// Complexity: O(1).
func (c *Costs) At(row, col int) (int64, bool, error) {
	k, err := c.indexOf("At", row, col)
	if err != nil {
		return 0, false, err
	}

	return c.w[k], c.has[k], nil
}

// Set stores edge row → col with weight w ≥ 0.
// Complexity: O(1).
func (c *Costs) Set(row, col int, w int64) error {
	k, err := c.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if w < 0 {
		return costsErrorf("Set", row, col, fmt.Errorf("%w: %d", ErrNegativeWeight, w))
	}
	c.w[k], c.has[k] = w, true

	return nil
}

// Clear removes edge row → col.
// Complexity: O(1).
func (c *Costs) Clear(row, col int) error {
	k, err := c.indexOf("Clear", row, col)
	if err != nil {
		return err
	}
	c.w[k], c.has[k] = 0, false

	return nil
}

// Neighbors returns the present off-diagonal cells of row u as edges,
// ascending by head. Out-of-range u yields nil.
// Complexity: O(n).
func (c *Costs) Neighbors(u int) []core.Edge {
	if c == nil || !core.InRange(u, c.n) {
		return nil
	}
	var res []core.Edge
	base := u * c.n
	for v := 0; v < c.n; v++ {
		if v == u || !c.has[base+v] {
			continue
		}
		res = append(res, core.Edge{From: u, To: v, Weight: c.w[base+v]})
	}

	return res
}

// EdgeCount returns the number of present off-diagonal cells.
// Complexity: O(n²).
func (c *Costs) EdgeCount() int {
	if c == nil {
		return 0
	}
	cnt := 0
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.n; j++ {
			if i != j && c.has[i*c.n+j] {
				cnt++
			}
		}
	}

	return cnt
}

// AdjacencyList converts the matrix into the sparse representation.
// Rows are scanned in order, so neighbor order is ascending by head.
// Complexity: O(n²).
func (c *Costs) AdjacencyList() *core.AdjacencyList {
	l, _ := core.NewAdjacencyList(c.Order())
	for u := 0; u < c.Order(); u++ {
		for _, e := range c.Neighbors(u) {
			// cannot fail: indices come from the matrix and weights are ≥ 0
			_ = l.AddEdge(e.From, e.To, e.Weight)
		}
	}

	return l
}

// String renders the matrix one row per line, "inf" for absent cells and
// 0 on an empty diagonal. The output parses back with Parse.
func (c *Costs) String() string {
	if c == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			k := i*c.n + j
			switch {
			case c.has[k]:
				b.WriteString(strconv.FormatInt(c.w[k], 10))
			case i == j:
				b.WriteByte('0')
			default:
				b.WriteString("inf")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
