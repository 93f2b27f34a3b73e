// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/parlab/config"
	"github.com/katalvlaran/parlab/dataset"
	"github.com/katalvlaran/parlab/formula"
	"github.com/katalvlaran/parlab/report"
	"github.com/katalvlaran/parlab/workpool"
)

// runLab executes one run described by cfg. Formula failures do not stop
// the run: every set is evaluated, both files are written, and the
// failures are returned combined at the end.
func runLab(cfg *config.Config, logger *zap.Logger, out io.Writer) (err error) {
	session := uuid.New()
	logger = logger.With(zap.Int("run_id", cfg.RunID), zap.Stringer("session", session))

	var console report.Reporter = report.Nop{}
	if cfg.PrintResults {
		console = report.NewConsole(out, report.WithFullOutput(cfg.FullOutput))
	}
	console.Report(report.Record{
		Kind:    report.KindInfo,
		Message: fmt.Sprintf("Run time results will be saved to %s", cfg.TimesFile()),
	})

	loadOpts := []dataset.Option{
		dataset.WithRegenerate(cfg.Regenerate),
		dataset.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		loadOpts = append(loadOpts, dataset.WithSeed(cfg.Seed))
	}
	sets, err := dataset.LoadOrGenerate(cfg.InputFile, cfg.Shapes, loadOpts...)
	if err != nil {
		return err
	}

	evOpts := []formula.Option{
		formula.WithWorkers(cfg.Workers),
		formula.WithReporter(console),
		formula.WithLogger(logger),
	}
	if cfg.PoolSize > 0 {
		pool, poolErr := workpool.New(cfg.PoolSize)
		if poolErr != nil {
			return poolErr
		}
		defer func() { err = multierr.Append(err, pool.Close()) }()
		evOpts = append(evOpts, formula.WithExecutor(pool))
	}
	ev := formula.NewEvaluator(evOpts...)

	var (
		results  = make([]formula.Result, 0, len(sets))
		timings  = make([]dataset.Timing, 0, len(sets))
		failures error
	)
	for i, vs := range sets {
		in, err := formula.InputsFromVariables(vs)
		if err != nil {
			return fmt.Errorf("input set %d: %w", i, err)
		}
		reportInputs(console, vs)

		start := time.Now()
		res, evalErr := ev.Evaluate(in)
		elapsed := time.Since(start)

		console.Report(report.Record{Kind: report.KindError, Message: "Run time", Elapsed: elapsed})
		console.Report(report.Record{Kind: report.KindInfo})
		logger.Info("input set evaluated",
			zap.Int("set", i),
			zap.Int("shape", in.MC.Cols()),
			zap.Duration("elapsed", elapsed),
			zap.Bool("ok", evalErr == nil))
		if evalErr != nil {
			failures = multierr.Append(failures, fmt.Errorf("input set %d: %w", i, evalErr))
		}

		results = append(results, res)
		timings = append(timings, dataset.Timing{Shape: in.MC.Cols(), Elapsed: elapsed})
	}

	doc, err := dataset.NewResults(cfg.RunID, session, results)
	if err != nil {
		return err
	}
	if err := dataset.WriteResults(cfg.OutputFile, doc); err != nil {
		return err
	}
	if err := dataset.WriteTimings(cfg.TimesFile(), timings); err != nil {
		return err
	}
	logger.Info("run finished",
		zap.Int("sets", len(sets)),
		zap.String("output", cfg.OutputFile),
		zap.String("times", cfg.TimesFile()))

	return failures
}

// reportInputs prints every variable of a set in name order.
func reportInputs(r report.Reporter, vs formula.Variables) {
	for _, name := range vs.Names() {
		rec := report.Record{Kind: report.KindInfo, Name: name}
		if m, ok := vs[name].AsMatrix(); ok {
			rec.Matrix = m
		} else if s, ok := vs[name].AsScalar(); ok {
			rec.Scalar = &s
		}
		r.Report(rec)
	}
}
