// SPDX-License-Identifier: MIT
// Package: polymer/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w via generateErrorf.
//   • Option constructors panic on programmer error instead of returning these.

package generate

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative length or pair count.
var ErrBadSize = errors.New("generate: invalid size")

// Canonical generator names, used as error prefixes.
const (
	MethodRandom      = "Random"
	MethodCollapsing  = "Collapsing"
	MethodIrreducible = "Irreducible"
	MethodBatch       = "Batch"
)

// generateErrorf prefixes a wrapped sentinel with the generator name:
// "Random: n=-1: generate: invalid size".
func generateErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
