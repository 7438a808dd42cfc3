// SPDX-License-Identifier: MIT
// Package: polymer/generate
//
// rng.go — deterministic RNG helpers.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. Batch derives one stream per
//     polymer so that each element is reproducible on its own.

package generate

import "math/rand"

// defaultSeed is used when callers pass no seed or seed 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream index into a new seed
// (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
