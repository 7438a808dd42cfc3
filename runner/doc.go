// Package runner executes named polymer solutions in two timed phases.
//
// A Solution's Generator parses the raw input into a Runnable (the generate
// phase); the Runnable then computes the answer (the run phase). Failures are
// reported as *PhaseError so callers can tell a rejected input from a
// computation that produced no value:
//
//	reg := runner.Polymer()
//	r := runner.New(reg)
//	rep, err := r.Run(ctx, "part2", input)
//	var pe *runner.PhaseError
//	if errors.As(err, &pe) && pe.Phase == runner.PhaseGenerate { ... }
//
// Solutions are registered explicitly by name; there is no reflection or
// discovery. Each phase is logged through log/slog and, when a
// *metrics.Metrics is attached, timed into Prometheus collectors.
package runner
