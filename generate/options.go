// SPDX-License-Identifier: MIT
// Package: polymer/generate
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: WithSeed or WithRand; otherwise defaultSeed.

package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/polymer/unit"
)

// Option customizes a generator by mutating its config before it runs.
type Option func(*config)

// WithSeed seeds a fresh *rand.Rand. Seed 0 maps to defaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
		c.seed = seed
	}
}

// WithRand shares an explicit RNG. Panics on nil.
// A shared *rand.Rand must not be used from several goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithIdentities restricts identities to the first k letters (1..26).
// Small k makes reactions frequent. Panics outside [1, 26].
func WithIdentities(k int) Option {
	if k < 1 || k > unit.AlphabetSize {
		panic(fmt.Sprintf("generate: WithIdentities(%d) outside [1,%d]", k, unit.AlphabetSize))
	}
	return func(c *config) {
		c.identities = k
	}
}

// WithLowerBias sets the probability that a random unit is lower-case.
// Panics outside [0, 1].
func WithLowerBias(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("generate: WithLowerBias(%g) outside [0,1]", p))
	}
	return func(c *config) {
		c.lowerBias = p
	}
}
