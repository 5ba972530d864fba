// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// Option customizes Build. Option constructors panic on meaningless input;
// Build itself never panics.
type Option func(*config)

// config is the resolved Build configuration.
type config struct {
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
}

func newConfig(opts ...Option) config {
	c := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithRand supplies the RNG used by stochastic constructors and weight functions.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn sets the edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithSymmetric makes every emitted arc u→v also emit v→u with its own weight
// draw. Grid is always symmetric.
func WithSymmetric() Option {
	return func(c *config) { c.symmetric = true }
}
