package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/polymer/internal/metrics"
)

// Sized is implemented by Runnables that know their input length.
type Sized interface {
	Len() int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records phase durations, failures and residues into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// Runner executes solutions from a Registry.
type Runner struct {
	registry *Registry
	log      *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// New returns a Runner over reg.
func New(reg *Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		log:      slog.Default().With("component", "runner"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named solution on input: generate, then run.
// A failure in either phase is returned as *PhaseError.
func (r *Runner) Run(ctx context.Context, name string, input []byte) (Report, error) {
	sol, err := r.registry.Lookup(name)
	if err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, r.fail(name, PhaseGenerate, err)
	}

	start := r.now()
	job, err := sol.Generate(input)
	genDone := r.now()
	if err != nil {
		return Report{}, r.fail(name, PhaseGenerate, err)
	}
	r.observe(name, PhaseGenerate, genDone.Sub(start))
	if s, ok := job.(Sized); ok && r.metrics != nil {
		r.metrics.InputUnits.Set(float64(s.Len()))
	}
	r.log.Debug("generated", "solution", name, "elapsed", genDone.Sub(start))

	value, err := job.Run(ctx)
	runDone := r.now()
	if err != nil {
		return Report{}, r.fail(name, PhaseRun, err)
	}
	r.observe(name, PhaseRun, runDone.Sub(genDone))

	rep := Report{
		Solution: name,
		Value:    value,
		Generate: genDone.Sub(start),
		Run:      runDone.Sub(genDone),
	}
	if n, ok := value.(int); ok && r.metrics != nil {
		r.metrics.Residue.WithLabelValues(name).Set(float64(n))
	}
	r.log.Info("solution finished",
		"solution", name,
		"value", value,
		"generate", rep.Generate,
		"run", rep.Run,
	)
	return rep, nil
}

// RunAll runs every named solution on the same input, or every registered
// one when names is empty. It keeps going after failures and returns the
// successful reports with all errors joined.
func (r *Runner) RunAll(ctx context.Context, input []byte, names ...string) ([]Report, error) {
	if len(names) == 0 {
		names = r.registry.Names()
	}
	reports := make([]Report, 0, len(names))
	var errs []error
	for _, name := range names {
		rep, err := r.Run(ctx, name, input)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports = append(reports, rep)
	}
	return reports, errors.Join(errs...)
}

func (r *Runner) fail(name string, phase Phase, err error) error {
	if r.metrics != nil {
		r.metrics.Failures.WithLabelValues(name, string(phase)).Inc()
	}
	r.log.Error("solution failed", "solution", name, "phase", phase, "error", err)
	return &PhaseError{Solution: name, Phase: phase, Err: err}
}

func (r *Runner) observe(name string, phase Phase, d time.Duration) {
	if r.metrics != nil {
		r.metrics.PhaseDuration.WithLabelValues(name, string(phase)).Observe(d.Seconds())
	}
}
