// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional configuration for the text loader.
// Policy:
//   - No global state.
//   - Panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import "fmt"

// Option configures Parse.
type Option func(*Options)

// Options holds resolved loader settings. Use the WithX constructors.
type Options struct {
	sentinel    int64 // numeric "no edge" value, meaningful when hasSentinel
	hasSentinel bool
	order       int // required row count; 0 = infer from the first row
}

// WithSentinel declares a numeric cell value meaning "no edge" (e.g. 999 or -1).
// Without it only the textual markers (inf, ∞, -, x) mean "no edge".
func WithSentinel(v int64) Option {
	return func(o *Options) {
		o.sentinel = v
		o.hasSentinel = true
	}
}

// WithOrder requires exactly n rows of n cells. n must be positive.
func WithOrder(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("matrix: WithOrder(%d): %v", n, ErrBadShape))
	}

	return func(o *Options) {
		o.order = n
	}
}

// gatherOptions applies opts over the defaults (no sentinel, inferred order).
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
