package scan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polymer/reduce"
	"github.com/katalvlaran/polymer/unit"
)

// MinResidue reduces units once per identity with that identity removed and
// returns the smallest residue. units is only read.
//
// Returns ErrReducerNil, ErrOptionViolation, ErrNoValue, or the context error.
func MinResidue(units []unit.Unit, reducer reduce.Func, opts ...Option) (Result, error) {
	if reducer == nil {
		return Result{}, ErrReducerNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	// A unit of identity X still appears in every view except X's, so some
	// view is non-empty unless units itself is empty.
	if len(units) == 0 {
		return Result{}, ErrNoValue
	}

	var trials [unit.AlphabetSize]int
	var err error
	if o.Workers > 1 {
		err = fanOut(o.Ctx, o.Workers, units, reducer, &trials)
	} else {
		err = sequential(o.Ctx, units, reducer, &trials)
	}
	if err != nil {
		return Result{}, err
	}
	return merge(&trials), nil
}

// sequential runs the trials in identity order.
func sequential(ctx context.Context, units []unit.Unit, reducer reduce.Func, out *[unit.AlphabetSize]int) error {
	for _, id := range unit.Alphabet() {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[id] = reducer(unit.Without(units, id))
	}
	return nil
}

// fanOut runs the trials on at most workers goroutines. Each goroutine
// writes only its own slot of out, so no locking is needed.
func fanOut(ctx context.Context, workers int, units []unit.Unit, reducer reduce.Func, out *[unit.AlphabetSize]int) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range unit.Alphabet() {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[id] = reducer(unit.Without(units, id))
			return nil
		})
	}
	return g.Wait()
}

// merge picks the minimum over all trials; ties keep the lowest identity.
// An empty view reduces to residue 0 and takes part in the minimum.
func merge(trials *[unit.AlphabetSize]int) Result {
	res := Result{Trials: *trials}
	for id, n := range trials {
		if id == 0 || n < res.Residue {
			res.Residue = n
			res.Identity = unit.Identity(id)
		}
	}
	return res
}
