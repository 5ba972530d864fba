// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrNilConstructor indicates Build was handed a zero Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
