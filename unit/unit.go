package unit

import "fmt"

// Unit is one polymer element in its wire encoding: an ASCII letter whose
// letter is the identity and whose case is the polarity.
type Unit byte

// noIdentity is returned by Identity for units outside the alphabet.
const noIdentity Identity = 0xFF

// New builds the unit with the given identity and polarity.
func New(id Identity, p Polarity) (Unit, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: identity %d", ErrInvalidAlphabet, id)
	}
	if p == Lower {
		return id.Lower(), nil
	}
	return id.Upper(), nil
}

// FromByte validates a single raw byte.
func FromByte(b byte) (Unit, error) {
	u := Unit(b)
	if !u.Valid() {
		return 0, &AlphabetError{Offset: 0, Byte: b}
	}
	return u, nil
}

// Valid reports whether u is an ASCII letter.
func (u Unit) Valid() bool {
	return (u >= 'A' && u <= 'Z') || (u >= 'a' && u <= 'z')
}

// Identity returns the case-folded identity of u.
// Units outside the alphabet report an invalid Identity.
func (u Unit) Identity() Identity {
	switch {
	case u >= 'A' && u <= 'Z':
		return Identity(u - 'A')
	case u >= 'a' && u <= 'z':
		return Identity(u - 'a')
	default:
		return noIdentity
	}
}

// Polarity returns Lower for lower-case letters and Upper otherwise.
func (u Unit) Polarity() Polarity {
	if u >= 'a' && u <= 'z' {
		return Lower
	}
	return Upper
}

// Flip returns the unit of the same identity and opposite polarity.
// Units outside the alphabet are returned unchanged.
func (u Unit) Flip() Unit {
	switch {
	case u >= 'A' && u <= 'Z':
		return u + PolarityShift
	case u >= 'a' && u <= 'z':
		return u - PolarityShift
	default:
		return u
	}
}

// String returns the unit as a one-letter string.
func (u Unit) String() string { return string(rune(u)) }

// Annihilates reports whether u and v react: same identity, opposite polarity.
//
// The check is the absolute difference of the encodings against
// PolarityShift plus an identity comparison, so pairs such as '@' and '`'
// (also 32 apart) never react.
func Annihilates(u, v Unit) bool {
	if diff(u, v) != PolarityShift {
		return false
	}
	id := u.Identity()
	return id.Valid() && id == v.Identity()
}

// diff returns |u - v| without underflow.
func diff(u, v Unit) Unit {
	if u > v {
		return u - v
	}
	return v - u
}
