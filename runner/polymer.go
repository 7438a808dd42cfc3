package runner

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/polymer/reduce"
	"github.com/katalvlaran/polymer/scan"
	"github.com/katalvlaran/polymer/unit"
)

// Registered solution names.
const (
	Part1      = "part1"
	Part1Stack = "part1-stack"
	Part2      = "part2"
	Part2Stack = "part2-stack"
)

// ErrNoValue is returned by the part2 solutions when the scan has nothing
// to report; it wraps scan.ErrNoValue.
var ErrNoValue = errors.New("runner: solution produced no value")

// polymerJob is the parsed input shared by all polymer solutions.
type polymerJob struct {
	units []unit.Unit
	run   func(ctx context.Context, units []unit.Unit) (any, error)
}

func (j polymerJob) Run(ctx context.Context) (any, error) { return j.run(ctx, j.units) }

func (j polymerJob) Len() int { return len(j.units) }

func polymerGenerator(run func(ctx context.Context, units []unit.Unit) (any, error)) Generator {
	return func(input []byte) (Runnable, error) {
		units, err := unit.Parse(input)
		if err != nil {
			return nil, err
		}
		return polymerJob{units: units, run: run}, nil
	}
}

func reduceOnce(f reduce.Func) func(context.Context, []unit.Unit) (any, error) {
	return func(ctx context.Context, units []unit.Unit) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return f(unit.All(units)), nil
	}
}

func scanAlphabet(f reduce.Func, opts []scan.Option) func(context.Context, []unit.Unit) (any, error) {
	return func(ctx context.Context, units []unit.Unit) (any, error) {
		res, err := scan.MinResidue(units, f, slices.Concat(opts, []scan.Option{scan.WithContext(ctx)})...)
		if errors.Is(err, scan.ErrNoValue) {
			return nil, errors.Join(ErrNoValue, err)
		}
		if err != nil {
			return nil, err
		}
		return res.Residue, nil
	}
}

// Polymer returns a registry with the four polymer solutions. scanOpts are
// applied to the part2 scans (for example scan.WithWorkers).
func Polymer(scanOpts ...scan.Option) *Registry {
	reg := NewRegistry()
	reg.MustRegister(
		Solution{
			Name:        Part1,
			Description: "residue length, index-tracking reducer",
			Generate:    polymerGenerator(reduceOnce(reduce.Index)),
		},
		Solution{
			Name:        Part1Stack,
			Description: "residue length, stack reducer",
			Generate:    polymerGenerator(reduceOnce(reduce.Stack)),
		},
		Solution{
			Name:        Part2,
			Description: "shortest residue after removing one identity, index-tracking reducer",
			Generate:    polymerGenerator(scanAlphabet(reduce.Index, scanOpts)),
		},
		Solution{
			Name:        Part2Stack,
			Description: "shortest residue after removing one identity, stack reducer",
			Generate:    polymerGenerator(scanAlphabet(reduce.Stack, scanOpts)),
		},
	)
	return reg
}
