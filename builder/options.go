// SPDX-License-Identifier: MIT
// Package: lvlca/builder
//
// options.go - builderConfig and its functional options.
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph and passed by value.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng drives stochastic constructors; nil means none were seeded.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults (decimal IDs, no RNG), last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG, making RandomTree and RandomDAG reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
