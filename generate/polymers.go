// SPDX-License-Identifier: MIT
// Package: polymer/generate
//
// polymers.go — the polymer generators.
//
// Contract:
//   • Each generator returns a fresh slice owned by the caller.
//   • n < 0 → ErrBadSize; n == 0 → empty, non-nil slice.
//   • O(n) time and memory.

package generate

import (
	"github.com/katalvlaran/polymer/unit"
)

// Random returns n units with identities in the first k letters
// (WithIdentities) and lower-case probability p (WithLowerBias).
func Random(n int, opts ...Option) ([]unit.Unit, error) {
	if n < 0 {
		return nil, generateErrorf(MethodRandom, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	return random(n, cfg), nil
}

func random(n int, cfg config) []unit.Unit {
	out := make([]unit.Unit, n)
	for i := range out {
		out[i] = cfg.unit()
	}
	return out
}

// Collapsing returns a polymer of 2·pairs units that reduces to nothing.
//
// It emits a random well-nested structure: each step either opens a new
// random unit or closes the innermost open one with its flipped twin. In the
// free-group view every opened unit is cancelled by its twin, so the residue
// is 0 no matter which pairs react first.
func Collapsing(pairs int, opts ...Option) ([]unit.Unit, error) {
	if pairs < 0 {
		return nil, generateErrorf(MethodCollapsing, ErrBadSize, "pairs=%d", pairs)
	}
	cfg := newConfig(opts...)
	out := make([]unit.Unit, 0, 2*pairs)
	open := make([]unit.Unit, 0, pairs)
	opened := 0
	for len(out) < 2*pairs {
		canClose := len(open) > 0
		mustClose := opened == pairs
		if canClose && (mustClose || cfg.rng.Intn(2) == 0) {
			top := open[len(open)-1]
			open = open[:len(open)-1]
			out = append(out, top.Flip())
			continue
		}
		u := cfg.unit()
		open = append(open, u)
		out = append(out, u)
		opened++
	}
	return out, nil
}

// Irreducible returns n units in which no adjacent pair reacts.
func Irreducible(n int, opts ...Option) ([]unit.Unit, error) {
	if n < 0 {
		return nil, generateErrorf(MethodIrreducible, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	out := make([]unit.Unit, n)
	for i := range out {
		u := cfg.unit()
		if i > 0 && unit.Annihilates(out[i-1], u) {
			u = u.Flip()
		}
		out[i] = u
	}
	return out, nil
}

// Batch returns count Random polymers of length n. Polymer i is generated
// from its own derived stream, so it does not change when count grows.
func Batch(count, n int, opts ...Option) ([][]unit.Unit, error) {
	if count < 0 || n < 0 {
		return nil, generateErrorf(MethodBatch, ErrBadSize, "count=%d n=%d", count, n)
	}
	cfg := newConfig(opts...)
	parent := cfg.rng.Int63()
	out := make([][]unit.Unit, count)
	for i := range out {
		sub := cfg
		sub.rng = rngFromSeed(deriveSeed(parent, uint64(i)))
		out[i] = random(n, sub)
	}
	return out, nil
}
