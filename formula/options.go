// SPDX-License-Identifier: MIT

package formula

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/parlab/matrix"
	"github.com/katalvlaran/parlab/report"
	"github.com/katalvlaran/parlab/workpool"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers sets the row-range count of every parallel multiply.
// Panics when w < 1 (see matrix.WithWorkers).
func WithWorkers(w int) Option {
	opt := matrix.WithWorkers(w)
	return func(ev *Evaluator) { ev.mulOpts = append(ev.mulOpts, opt) }
}

// WithExecutor runs every row task of every multiply on e, typically one
// *workpool.Pool shared by the whole evaluation. Panics when e is nil.
func WithExecutor(e workpool.Executor) Option {
	opt := matrix.WithExecutor(e)
	return func(ev *Evaluator) { ev.mulOpts = append(ev.mulOpts, opt) }
}

// WithReporter receives one record per finished formula. A nil reporter
// restores the default (report.Nop).
func WithReporter(r report.Reporter) Option {
	return func(ev *Evaluator) {
		if r == nil {
			r = report.Nop{}
		}
		ev.reporter = r
	}
}

// WithLogger sets the structured logger. A nil logger restores the default
// (zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(ev *Evaluator) {
		if l == nil {
			l = zap.NewNop()
		}
		ev.logger = l
	}
}
