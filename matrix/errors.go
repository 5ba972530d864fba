// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All loader and Costs operations return these sentinels, usually wrapped
// with line/cell context; callers match with errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty input -> token syntax -> row width -> row count -> weight sign.

var (
	// ErrBadShape is returned when a non-positive order is requested.
	ErrBadShape = errors.New("matrix: order must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Clear) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyMatrix indicates the input contained no rows.
	ErrEmptyMatrix = errors.New("matrix: no rows")

	// ErrNonSquare indicates a row of the wrong width or the wrong number of rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadToken indicates a cell that is neither an integer nor a no-edge marker.
	ErrBadToken = errors.New("matrix: malformed cell")

	// ErrNegativeWeight indicates a negative off-diagonal weight that is not the sentinel.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNilMatrix indicates that a nil *Costs was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
