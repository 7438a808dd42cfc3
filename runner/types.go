package runner

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the harness.
var (
	// ErrUnknownSolution is returned by Lookup and Run for unregistered names.
	ErrUnknownSolution = errors.New("runner: unknown solution")

	// ErrDuplicateSolution is returned by Register when a name is taken.
	ErrDuplicateSolution = errors.New("runner: solution already registered")

	// ErrInvalidSolution is returned by Register for an empty name or nil Generator.
	ErrInvalidSolution = errors.New("runner: invalid solution")
)

// Phase names the step of a solution that failed.
type Phase string

const (
	// PhaseGenerate turns input bytes into a Runnable.
	PhaseGenerate Phase = "generate"
	// PhaseRun computes the answer.
	PhaseRun Phase = "run"
)

func (p Phase) gerund() string {
	switch p {
	case PhaseGenerate:
		return "generating"
	case PhaseRun:
		return "running"
	default:
		return string(p)
	}
}

// PhaseError wraps the cause of a failed phase.
type PhaseError struct {
	Solution string
	Phase    Phase
	Err      error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("runner: %s: FAILED while %s: %v", e.Solution, e.Phase.gerund(), e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *PhaseError) Unwrap() error { return e.Err }

// Runnable is a prepared computation.
type Runnable interface {
	Run(ctx context.Context) (any, error)
}

// RunFunc adapts a function to Runnable.
type RunFunc func(ctx context.Context) (any, error)

// Run calls f.
func (f RunFunc) Run(ctx context.Context) (any, error) { return f(ctx) }

// Generator prepares a Runnable from raw input.
type Generator func(input []byte) (Runnable, error)

// Solution is a named, registered Generator.
type Solution struct {
	Name        string
	Description string
	Generate    Generator
}

// Report is the outcome of one successful execution.
type Report struct {
	Solution string
	Value    any
	Generate time.Duration
	Run      time.Duration
}

// Total is the wall time of both phases.
func (r Report) Total() time.Duration { return r.Generate + r.Run }

func (r Report) String() string {
	return fmt.Sprintf("%s: %v\n\tgenerator: %v,\n\trunner: %v", r.Solution, r.Value, r.Generate, r.Run)
}
