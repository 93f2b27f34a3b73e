// Package workpool provides the fork-join primitive used by the parallel
// matrix kernels.
//
// An Executor runs a batch of leaf tasks and blocks until every one of
// them has returned. Two implementations are provided:
//
//   - Pool: a fixed set of long-lived worker goroutines, backed by the
//     go-highway workerpool. A Run hands its tasks to the workers in
//     contiguous chunks (workerpool.ParallelFor). It is reusable across any
//     number of Run calls and across concurrent callers, and bounds the
//     number of goroutines doing numeric work at any moment. Close stops
//     the workers.
//   - Spawn: starts one goroutine per task for the duration of a single
//     Run call. It needs no lifecycle management and is the default when
//     no pool is supplied.
//
// Tasks submitted to an Executor must be leaves: a task must never block
// on another Run of the same Pool, otherwise every worker could end up
// waiting on work that has no free worker to run it.
package workpool
