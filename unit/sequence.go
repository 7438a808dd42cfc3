package unit

import "iter"

// isSpace reports ASCII whitespace that may surround a polymer line.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// Parse converts one line of polymer text into units.
// Surrounding whitespace is trimmed; any other non-letter byte fails with an
// *AlphabetError carrying its offset in data.
//
// Complexity: O(n) time, O(n) memory.
func Parse(data []byte) ([]Unit, error) {
	lo, hi := 0, len(data)
	for lo < hi && isSpace(data[lo]) {
		lo++
	}
	for hi > lo && isSpace(data[hi-1]) {
		hi--
	}
	units := make([]Unit, 0, hi-lo)
	for i := lo; i < hi; i++ {
		u := Unit(data[i])
		if !u.Valid() {
			return nil, &AlphabetError{Offset: i, Byte: data[i]}
		}
		units = append(units, u)
	}
	return units, nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse(s string) []Unit {
	units, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return units
}

// FromBytesUnchecked reinterprets data as units without validation.
// Bytes outside the alphabet never annihilate and survive any reduction.
func FromBytesUnchecked(data []byte) []Unit {
	units := make([]Unit, len(data))
	for i, b := range data {
		units[i] = Unit(b)
	}
	return units
}

// All streams units front to back.
func All(units []Unit) iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for _, u := range units {
			if !yield(u) {
				return
			}
		}
	}
}

// Without streams units front to back, skipping both polarities of id.
// The source slice is only read, so concurrent views over it are safe.
func Without(units []Unit, id Identity) iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for _, u := range units {
			if u.Identity() == id {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// String encodes units back to text.
func String(units []Unit) string {
	b := make([]byte, len(units))
	for i, u := range units {
		b[i] = byte(u)
	}
	return string(b)
}
