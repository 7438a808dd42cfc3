// Package unit models the building blocks of a polymer: units that carry an
// identity (a letter, case-insensitive) and a polarity (its case).
//
// What:
//
//   - Unit: one byte, the ASCII encoding of (identity, polarity).
//   - Annihilates: the pure, symmetric reaction predicate. Two units react
//     iff they share an identity and have opposite polarity.
//   - Parse: the producing boundary that turns raw text into validated units.
//   - Without: a filtered, read-only view that skips one identity family.
//
// Why:
//
//   - The reducers in package reduce only need the predicate and a stream of
//     units; keeping the encoding here lets them stay ignorant of ASCII.
//
// Errors:
//
//   - ErrInvalidAlphabet: a byte outside a–z / A–Z reached the producing layer.
//     Parse reports the offset and value through *AlphabetError.
//
// Units outside the alphabet (only reachable through FromBytesUnchecked)
// never annihilate with anything, so a reducer fed unvalidated input keeps
// them in the residue instead of misclassifying them.
package unit
