// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: text → Costs loader.
// Format:
//   - One matrix row per non-blank line; cells separated by whitespace.
//   - '#' starts a comment running to end of line.
//   - inf, ∞, -, x (case-insensitive) always mean "no edge"; a numeric
//     sentinel can be added with WithSentinel.
//   - The diagonal is read (and must be well-formed) but never becomes an edge.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a square cost matrix from r.
//
// Errors (wrapped with "line N" context):
//   - ErrEmptyMatrix: no rows.
//   - ErrBadToken: a cell is neither an integer nor a no-edge marker.
//   - ErrNonSquare: a row's width differs from the order, or the row count does.
//   - ErrNegativeWeight: a negative off-diagonal value that is not the sentinel.
//   - any read error from r.
//
// Complexity: O(n²).
func Parse(r io.Reader, opts ...Option) (*Costs, error) {
	o := gatherOptions(opts...)

	var (
		rows  [][]cell
		lines []int // source line of each row, for error context
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		row := make([]cell, len(fields))
		for j, tok := range fields {
			c, err := parseCell(tok, o)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", lineNo, j+1, err)
			}
			row[j] = c
		}

		want := o.order
		if want == 0 && len(rows) > 0 {
			want = len(rows[0])
		}
		if want != 0 && len(row) != want {
			return nil, fmt.Errorf("line %d: %w: row has %d cells, want %d", lineNo, ErrNonSquare, len(row), want)
		}
		rows = append(rows, row)
		lines = append(lines, lineNo)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(rows[0])
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows of %d cells", ErrNonSquare, len(rows), n)
	}

	m, err := NewCosts(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, c := range row {
			if i == j || !c.present {
				continue
			}
			if c.w < 0 {
				return nil, fmt.Errorf("line %d, column %d: %w: %d", lines[i], j+1, ErrNegativeWeight, c.w)
			}
			// indices are in range and weight is ≥ 0
			_ = m.Set(i, j, c.w)
		}
	}

	return m, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Costs, error) {
	return Parse(strings.NewReader(s), opts...)
}

// cell is one parsed token.
type cell struct {
	w       int64
	present bool
}

func parseCell(tok string, o Options) (cell, error) {
	if isNoEdgeMarker(tok) {
		return cell{}, nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return cell{}, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	if o.hasSentinel && v == o.sentinel {
		return cell{}, nil
	}

	return cell{w: v, present: true}, nil
}

func isNoEdgeMarker(tok string) bool {
	switch strings.ToLower(tok) {
	case "inf", "∞", "-", "x":
		return true
	default:
		return false
	}
}
