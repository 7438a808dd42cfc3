package reduce

import (
	"iter"
	"slices"

	"github.com/katalvlaran/polymer/unit"
)

// Arena is a working buffer for the index-tracking reducer: contiguous slots
// plus one present flag per slot. Removed units are tombstoned in place, not
// compacted. An Arena is owned by a single reduction and is not safe for
// concurrent use.
type Arena struct {
	slots   []unit.Unit
	present []bool
	live    int
}

// NewArena wraps units without copying them. Collapse only flips present
// flags, so the caller's slice content is left as it was.
func NewArena(units []unit.Unit) *Arena {
	present := make([]bool, len(units))
	for i := range present {
		present[i] = true
	}
	return &Arena{slots: units, present: present, live: len(units)}
}

// Index materializes units into a private Arena and collapses it.
//
// Complexity: Time O(n²) worst case, Memory O(n).
func Index(units iter.Seq[unit.Unit]) int {
	return NewArena(slices.Collect(units)).Collapse()
}

// Len returns the number of present (non-tombstoned) units.
func (a *Arena) Len() int { return a.live }

// Cap returns the number of slots, present or not.
func (a *Arena) Cap() int { return len(a.slots) }

// Present reports whether slot i still holds a unit.
func (a *Arena) Present(i int) bool {
	return i >= 0 && i < len(a.present) && a.present[i]
}

// Residue returns the present units in slot order.
func (a *Arena) Residue() []unit.Unit {
	out := make([]unit.Unit, 0, a.live)
	for i, u := range a.slots {
		if a.present[i] {
			out = append(out, u)
		}
	}
	return out
}

// Collapse removes reacting pairs until none remain and returns the residue.
// Calling it again on a collapsed arena is a no-op that returns the same count.
//
// Algorithm:
//  1. Put the cursor on the first present slot.
//  2. Find the next present slot after the cursor; stop if there is none.
//  3. If the two units react, tombstone both and move the cursor to the
//     nearest present slot before the pair, since the removal may have made
//     it adjacent to a reactive partner. With nothing before the pair, move
//     to the first present slot after it.
//  4. Otherwise advance the cursor to that next present slot.
func (a *Arena) Collapse() int {
	i := a.nextPresent(0)
	for i >= 0 {
		j := a.nextPresent(i + 1)
		if j < 0 {
			break
		}
		if !unit.Annihilates(a.slots[i], a.slots[j]) {
			i = j
			continue
		}
		a.present[i], a.present[j] = false, false
		a.live -= 2
		if p := a.prevPresent(i - 1); p >= 0 {
			i = p
		} else {
			i = a.nextPresent(j + 1)
		}
	}
	return a.live
}

// nextPresent returns the first present slot at or after from, or -1.
func (a *Arena) nextPresent(from int) int {
	for k := from; k < len(a.present); k++ {
		if a.present[k] {
			return k
		}
	}
	return -1
}

// prevPresent returns the last present slot at or before from, or -1.
func (a *Arena) prevPresent(from int) int {
	for k := min(from, len(a.present)-1); k >= 0; k-- {
		if a.present[k] {
			return k
		}
	}
	return -1
}
