// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the parallel multiply.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: the worker count is a static constant per call,
//     independent of matrix size and of the machine.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/parlab/workpool"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers is the number of row ranges MulParallel partitions A into.
const DefaultWorkers = 8

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "matrix: WithWorkers: workers must be >= 1, got %d"
	panicExecutorMissing = "matrix: WithExecutor: executor must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers  int               // >= 1; DefaultWorkers
	executor workpool.Executor // non-nil; workpool.Spawn{}
}

// WithWorkers sets the number of row ranges (and so, at most, concurrent tasks)
// a parallel multiply uses. Panics when w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf(panicWorkersInvalid, w))
	}

	return func(o *Options) { o.workers = w }
}

// WithExecutor routes the row tasks of a parallel multiply through e,
// typically a shared *workpool.Pool. Panics when e is nil.
func WithExecutor(e workpool.Executor) Option {
	if e == nil {
		panic(panicExecutorMissing)
	}

	return func(o *Options) { o.executor = e }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Workers returns the effective worker count.
func (o Options) Workers() int { return o.workers }

// Executor returns the effective executor.
func (o Options) Executor() workpool.Executor { return o.executor }

// gatherOptions applies opts in order over defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:  DefaultWorkers,
		executor: workpool.Spawn{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
