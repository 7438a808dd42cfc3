package reduce

import (
	"iter"

	"github.com/katalvlaran/polymer/unit"
)

// Stack reduces units in a single forward pass and returns the residue length.
//
// Algorithm:
//  1. For each incoming unit u:
//     if the stack is non-empty and its top reacts with u, pop the top;
//     otherwise push u.
//  2. The residue is the final stack height.
//
// Complexity: Time O(n), Memory O(n).
func Stack(units iter.Seq[unit.Unit]) int {
	return len(StackResidue(units))
}

// StackResidue runs the same pass as Stack and returns the surviving units
// in order. The result is irreducible.
func StackResidue(units iter.Seq[unit.Unit]) []unit.Unit {
	var stack []unit.Unit
	for u := range units {
		if top := len(stack) - 1; top >= 0 && unit.Annihilates(stack[top], u) {
			stack = stack[:top]
			continue
		}
		stack = append(stack, u)
	}
	return stack
}
