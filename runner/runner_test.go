package runner_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymer/internal/metrics"
	"github.com/katalvlaran/polymer/runner"
	"github.com/katalvlaran/polymer/scan"
	"github.com/katalvlaran/polymer/unit"
)

var sample = []byte("dabAcCaCBAcCcaDA\n")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestPolymer_Sample(t *testing.T) {
	r := runner.New(runner.Polymer(scan.WithWorkers(4)), runner.WithLogger(quietLogger()))

	want := map[string]int{
		runner.Part1:      10,
		runner.Part1Stack: 10,
		runner.Part2:      4,
		runner.Part2Stack: 4,
	}
	for name, residue := range want {
		t.Run(name, func(t *testing.T) {
			rep, err := r.Run(context.Background(), name, sample)
			require.NoError(t, err)
			assert.Equal(t, name, rep.Solution)
			assert.Equal(t, residue, rep.Value)
			assert.Equal(t, rep.Generate+rep.Run, rep.Total())
		})
	}
}

func TestRunAll_DefaultsToEveryName(t *testing.T) {
	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()))
	reports, err := r.RunAll(context.Background(), sample)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	got := make([]string, len(reports))
	for i, rep := range reports {
		got[i] = rep.Solution
	}
	assert.Equal(t, []string{"part1", "part1-stack", "part2", "part2-stack"}, got)
}

func TestRunAll_ContinuesPastFailures(t *testing.T) {
	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()))
	reports, err := r.RunAll(context.Background(), sample, "part1", "part9", "part2-stack")
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrUnknownSolution)
	require.Len(t, reports, 2)
	assert.Equal(t, 10, reports[0].Value)
	assert.Equal(t, 4, reports[1].Value)
}

// TestRun_GenerateFailure checks that rejected input surfaces as a
// generate-phase error carrying the alphabet error.
func TestRun_GenerateFailure(t *testing.T) {
	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()))
	_, err := r.Run(context.Background(), runner.Part1, []byte("ab1"))

	var pe *runner.PhaseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, runner.PhaseGenerate, pe.Phase)
	assert.Equal(t, runner.Part1, pe.Solution)
	assert.ErrorIs(t, err, unit.ErrInvalidAlphabet)
	assert.Contains(t, err.Error(), "FAILED while generating")

	var ae *unit.AlphabetError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 2, ae.Offset)
}

// TestRun_NoValue checks the empty polymer: part1 reports 0 while part2 has
// nothing to scan and fails in the run phase.
func TestRun_NoValue(t *testing.T) {
	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()))

	rep, err := r.Run(context.Background(), runner.Part1Stack, []byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Value)

	_, err = r.Run(context.Background(), runner.Part2, []byte("\n"))
	var pe *runner.PhaseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, runner.PhaseRun, pe.Phase)
	assert.ErrorIs(t, err, runner.ErrNoValue)
	assert.ErrorIs(t, err, scan.ErrNoValue)
	assert.Contains(t, err.Error(), "FAILED while running")
}

func TestRun_UnknownSolution(t *testing.T) {
	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()))
	_, err := r.Run(context.Background(), "day6", sample)
	assert.ErrorIs(t, err, runner.ErrUnknownSolution)

	var pe *runner.PhaseError
	assert.False(t, errors.As(err, &pe))
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()))
	_, err := r.Run(ctx, runner.Part2, sample)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CustomSolutionRunFailure(t *testing.T) {
	boom := errors.New("boom")
	reg := runner.NewRegistry()
	require.NoError(t, reg.Register(runner.Solution{
		Name: "broken",
		Generate: func([]byte) (runner.Runnable, error) {
			return runner.RunFunc(func(context.Context) (any, error) { return nil, boom }), nil
		},
	}))

	r := runner.New(reg, runner.WithLogger(quietLogger()))
	_, err := r.Run(context.Background(), "broken", nil)
	var pe *runner.PhaseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, runner.PhaseRun, pe.Phase)
	assert.ErrorIs(t, err, boom)
}

func TestRun_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	r := runner.New(runner.Polymer(), runner.WithLogger(quietLogger()), runner.WithMetrics(m))

	_, err := r.Run(context.Background(), runner.Part1, sample)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), runner.Part1, []byte("a!"))
	require.Error(t, err)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.Residue.WithLabelValues(runner.Part1)))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.InputUnits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues(runner.Part1, "generate")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Failures.WithLabelValues(runner.Part1, "run")))

	n, err := testutil.GatherAndCount(reg, "polymer_phase_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per phase")
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := runner.New(runner.Polymer(), runner.WithLogger(log))

	_, err := r.Run(context.Background(), runner.Part1Stack, sample)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "solution finished")
	assert.Contains(t, buf.String(), "solution=part1-stack")
	assert.Contains(t, buf.String(), "value=10")
}

func TestReport_String(t *testing.T) {
	rep := runner.Report{Solution: "part1", Value: 10}
	s := rep.String()
	assert.Contains(t, s, "part1: 10")
	assert.Contains(t, s, "\tgenerator: 0s,")
	assert.Contains(t, s, "\trunner: 0s")
}

func TestRegistry(t *testing.T) {
	reg := runner.NewRegistry()
	gen := func([]byte) (runner.Runnable, error) { return nil, nil }

	require.NoError(t, reg.Register(runner.Solution{Name: "b", Generate: gen}))
	require.NoError(t, reg.Register(runner.Solution{Name: "a", Generate: gen}))
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	assert.ErrorIs(t, reg.Register(runner.Solution{Name: "a", Generate: gen}), runner.ErrDuplicateSolution)
	assert.ErrorIs(t, reg.Register(runner.Solution{Name: "", Generate: gen}), runner.ErrInvalidSolution)
	assert.ErrorIs(t, reg.Register(runner.Solution{Name: "c"}), runner.ErrInvalidSolution)

	s, err := reg.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.Name)

	_, err = reg.Lookup("z")
	assert.ErrorIs(t, err, runner.ErrUnknownSolution)

	assert.Panics(t, func() { reg.MustRegister(runner.Solution{Name: "a", Generate: gen}) })
}

func TestPolymer_Descriptions(t *testing.T) {
	reg := runner.Polymer()
	for _, name := range reg.Names() {
		s, err := reg.Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, s.Description, name)
	}
}
