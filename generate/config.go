// SPDX-License-Identifier: MIT
// Package: polymer/generate
//
// config.go — resolved generator configuration and deterministic defaults.
//
// Defaults:
//   • rng        = rngFromSeed(defaultSeed)
//   • identities = 26
//   • lowerBias  = 0.5

package generate

import (
	"math/rand"

	"github.com/katalvlaran/polymer/unit"
)

const defaultLowerBias = 0.5

// config aggregates all generator knobs. Passed by value once resolved.
type config struct {
	rng        *rand.Rand
	seed       int64
	identities int
	lowerBias  float64
}

// newConfig applies opts in order over the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		seed:       defaultSeed,
		identities: unit.AlphabetSize,
		lowerBias:  defaultLowerBias,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}
	return cfg
}

// unit draws one random unit under cfg.
func (c config) unit() unit.Unit {
	id := unit.Identity(c.rng.Intn(c.identities))
	if c.rng.Float64() < c.lowerBias {
		return id.Lower()
	}
	return id.Upper()
}
