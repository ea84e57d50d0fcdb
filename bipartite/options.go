// SPDX-License-Identifier: MIT
// Package: bimatch/bipartite
//
// options.go — functional options for the stochastic constructors.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil RNG).
//   • Constructors themselves never panic; they return sentinel errors.
//   • Determinism is explicit: seed with WithSeed or pass WithRand.

package bipartite

import "math/rand"

// Option customizes a constructor before it runs.
type Option func(*buildConfig)

// buildConfig collects the knobs used by constructors.
type buildConfig struct {
	// rng drives Bernoulli trials; nil means no randomness available.
	rng *rand.Rand
}

// newBuildConfig applies opts in order over deterministic defaults.
func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bipartite: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so that Random is reproducible.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
