package unit

import (
	"errors"
	"fmt"
)

// ErrInvalidAlphabet indicates a byte or identity outside the 26-letter domain.
var ErrInvalidAlphabet = errors.New("unit: outside the a-z/A-Z alphabet")

// AlphabetError reports the first offending byte found by Parse.
type AlphabetError struct {
	Offset int
	Byte   byte
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("unit: invalid byte %q at offset %d: outside the a-z/A-Z alphabet", e.Byte, e.Offset)
}

// Unwrap lets errors.Is match ErrInvalidAlphabet.
func (e *AlphabetError) Unwrap() error { return ErrInvalidAlphabet }

const (
	// AlphabetSize is the number of distinct identities.
	AlphabetSize = 26

	// PolarityShift is the numeric distance between the upper and lower
	// encoding of the same identity.
	PolarityShift = 'a' - 'A'
)

// Polarity is the binary charge of a unit, encoded as letter case.
type Polarity uint8

const (
	// Upper polarity: 'A'..'Z'.
	Upper Polarity = iota
	// Lower polarity: 'a'..'z'.
	Lower
)

// String returns "upper" or "lower".
func (p Polarity) String() string {
	if p == Lower {
		return "lower"
	}
	return "upper"
}

// Opposite returns the other polarity.
func (p Polarity) Opposite() Polarity {
	if p == Lower {
		return Upper
	}
	return Lower
}

// Identity is a case-insensitive letter: 0 for A/a up to 25 for Z/z.
type Identity uint8

// Valid reports whether id is one of the 26 identities.
func (id Identity) Valid() bool { return id < AlphabetSize }

// Upper returns the upper-polarity unit of id.
func (id Identity) Upper() Unit { return Unit('A' + id) }

// Lower returns the lower-polarity unit of id.
func (id Identity) Lower() Unit { return Unit('a' + id) }

// String renders the identity as its upper-case letter, or "?" when invalid.
func (id Identity) String() string {
	if !id.Valid() {
		return "?"
	}
	return string(rune('A' + id))
}

// ParseIdentity accepts a single letter of either case.
func ParseIdentity(s string) (Identity, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: identity %q must be a single letter", ErrInvalidAlphabet, s)
	}
	u, err := FromByte(s[0])
	if err != nil {
		return 0, err
	}
	return u.Identity(), nil
}

// Alphabet returns the 26 identities in order A..Z.
func Alphabet() []Identity {
	ids := make([]Identity, AlphabetSize)
	for i := range ids {
		ids[i] = Identity(i)
	}
	return ids
}
