package reduce

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/polymer/unit"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("reduce: unknown strategy")

// Func is the contract shared by every reducer: consume a finite stream of
// units and return the residue length.
type Func func(units iter.Seq[unit.Unit]) int

// Strategy selects a reducer implementation.
type Strategy int

const (
	// StackStrategy is the single-pass stack reducer (default, reference).
	StackStrategy Strategy = iota
	// IndexStrategy is the tombstone arena reducer.
	IndexStrategy
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case StackStrategy:
		return "stack"
	case IndexStrategy:
		return "index"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Func returns the reducer implementing s. Unknown values fall back to Stack.
func (s Strategy) Func() Func {
	if s == IndexStrategy {
		return Index
	}
	return Stack
}

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{StackStrategy, IndexStrategy}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// The empty name selects StackStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stack":
		return StackStrategy, nil
	case "index", "tombstone":
		return IndexStrategy, nil
	default:
		return 0, fmt.Errorf("%w: %q (want stack or index)", ErrUnknownStrategy, name)
	}
}
