// SPDX-License-Identifier: MIT
// Package: polymer/generate
//
// oracle.go — randomized removal-order reducer.
//
// Purpose:
//   • A deliberately naive model of the reaction: list every reacting
//     adjacent pair, remove one chosen at random, repeat.
//   • Lets property tests compare residues across many removal orders.
//
// Complexity: O(n²) time, O(n) memory. Keep inputs small.

package generate

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/polymer/unit"
)

// OracleResidue reduces a copy of units, removing a uniformly random
// reacting pair at each step, and returns the surviving units.
// A nil rng uses defaultSeed.
func OracleResidue(units []unit.Unit, rng *rand.Rand) []unit.Unit {
	if rng == nil {
		rng = rngFromSeed(defaultSeed)
	}
	work := slices.Clone(units)
	candidates := make([]int, 0, len(work))
	for {
		candidates = candidates[:0]
		for i := 0; i+1 < len(work); i++ {
			if unit.Annihilates(work[i], work[i+1]) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			return work
		}
		k := candidates[rng.Intn(len(candidates))]
		work = slices.Delete(work, k, k+2)
	}
}
