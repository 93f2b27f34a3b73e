// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parlab/matrix"
	"github.com/katalvlaran/parlab/report"
)

// Result holds the outcome of both formulas. For each formula exactly one
// of the matrix and the error is non-nil.
type Result struct {
	E     *matrix.Dense
	MA    *matrix.Dense
	EErr  error
	MAErr error
}

// Err combines the failures of both formulas, nil when both succeeded.
func (r Result) Err() error {
	return multierr.Combine(r.EErr, r.MAErr)
}

// Evaluator computes E and MA. It holds no mutable state after
// construction and may be used from many goroutines at once.
type Evaluator struct {
	mulOpts  []matrix.Option
	reporter report.Reporter
	logger   *zap.Logger
}

// NewEvaluator builds an Evaluator. Defaults: matrix.DefaultWorkers row
// ranges, per-call goroutines (workpool.Spawn), no reporting, no logging.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{
		reporter: report.Nop{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ev)
		}
	}

	return ev
}

// EvaluateVariables converts the bag with InputsFromVariables and evaluates
// it. A malformed bag fails before anything is computed.
func (ev *Evaluator) EvaluateVariables(vs Variables) (Result, error) {
	in, err := InputsFromVariables(vs)
	if err != nil {
		return Result{}, err
	}

	return ev.Evaluate(in)
}

// Evaluate computes both formulas concurrently.
// Implementation:
//   - Stage 1: fork one task for E and one for MA.
//   - Stage 2: inside MA, fork MD·(MC−MX) and MX·MC (see evalMA).
//   - Stage 3: join; every launched task has finished when Evaluate returns.
//
// Returns:
//   - Result with both outcomes, successful or not.
//   - error combining EErr and MAErr (multierr), nil when both succeeded.
//
// Errors:
//   - matrix.ErrDimensionMismatch / ErrNilInput wrapped with the formula name.
func (ev *Evaluator) Evaluate(in Inputs) (Result, error) {
	var (
		res Result
		g   errgroup.Group
	)
	// Each task writes only its own fields of res.
	g.Go(func() error {
		res.E, res.EErr = ev.run(NameE, func() (*matrix.Dense, error) { return ev.evalE(in) })
		return res.EErr
	})
	g.Go(func() error {
		res.MA, res.MAErr = ev.run(NameMA, func() (*matrix.Dense, error) { return ev.evalMA(in) })
		return res.MAErr
	})
	// Join point only: both failures are already in res, Wait's first error adds nothing.
	_ = g.Wait()

	return res, res.Err()
}

// run times one formula, logs it and emits its record.
func (ev *Evaluator) run(name string, eval func() (*matrix.Dense, error)) (*matrix.Dense, error) {
	start := time.Now()
	m, err := eval()
	elapsed := time.Since(start)

	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
		ev.logger.Warn("formula failed", zap.String("formula", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		ev.reporter.Report(report.Record{Kind: report.KindError, Name: name, Err: err})
		return nil, err
	}

	ev.logger.Debug("formula evaluated",
		zap.String("formula", name),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Duration("elapsed", elapsed))
	ev.reporter.Report(report.Record{Kind: report.KindResult, Name: name, Matrix: m})

	return m, nil
}

// evalE computes E = B·MC + D·min(MC).
func (ev *Evaluator) evalE(in Inputs) (*matrix.Dense, error) {
	if err := in.validateE(); err != nil {
		return nil, err
	}

	prod, err := matrix.MulParallel(in.B, in.MC, ev.mulOpts...)
	if err != nil {
		return nil, err
	}
	low, err := matrix.Min(in.MC)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.Scale(in.D, low)
	if err != nil {
		return nil, err
	}

	return matrix.Add(prod, scaled)
}

// evalMA computes MA = b·(MD·(MC−MX)) + (MX·MC)·b, with the two products
// forked as independent tasks and joined before they are combined.
func (ev *Evaluator) evalMA(in Inputs) (*matrix.Dense, error) {
	if err := in.validateMA(); err != nil {
		return nil, err
	}

	var (
		left, right *matrix.Dense
		g           errgroup.Group
	)
	g.Go(func() error {
		diff, err := matrix.Sub(in.MC, in.MX)
		if err != nil {
			return err
		}
		left, err = matrix.MulParallel(in.MD, diff, ev.mulOpts...)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = matrix.MulParallel(in.MX, in.MC, ev.mulOpts...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	leftScaled, err := matrix.Scale(left, in.Beta)
	if err != nil {
		return nil, err
	}
	rightScaled, err := matrix.Scale(right, in.Beta)
	if err != nil {
		return nil, err
	}

	return matrix.Add(leftScaled, rightScaled)
}
