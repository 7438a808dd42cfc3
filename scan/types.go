package scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polymer/unit"
)

// Sentinel errors for the alphabet scan.
var (
	// ErrNoValue is returned when no trial had any unit to reduce.
	ErrNoValue = errors.New("scan: no value: every filtered polymer is empty")

	// ErrReducerNil is returned when MinResidue gets a nil reducer.
	ErrReducerNil = errors.New("scan: reducer is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scan: invalid option supplied")
)

// Option configures MinResidue via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the knobs of one scan.
type Options struct {
	// Ctx is checked before every trial; defaults to context.Background().
	Ctx context.Context

	// Workers bounds concurrent trials. 1 runs them sequentially.
	Workers int

	err error
}

// DefaultOptions returns a sequential scan with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets a context for cancellation between trials.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds how many trials run at once.
//
//	n == 1: sequential
//	n > 1:  up to n goroutines (capped at 26)
//	n < 1:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = min(n, unit.AlphabetSize)
	}
}

// Result is the outcome of an alphabet scan.
type Result struct {
	// Residue is the minimum residue over all trials.
	Residue int
	// Identity is a witness: the lowest identity whose removal reaches Residue.
	Identity unit.Identity
	// Trials holds every trial's residue, indexed by identity.
	Trials [unit.AlphabetSize]int
}
