// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-band parallel multiply built on the partition and workpool packages.
//
// Determinism:
//   - Partitioning only decides which worker computes which rows; every cell
//     goes through dotKahan exactly like MulSequential, so the result is
//     bit-identical for any worker count.

package matrix

import (
	"github.com/katalvlaran/parlab/partition"
)

// MulParallel performs C = A × B with the rows of A split across workers.
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B). On failure nothing is allocated
//     and no task reaches the executor.
//   - Stage 2: partition.Split(A.Rows, W) into W contiguous row ranges.
//   - Stage 3: one task per non-empty range; each task fills its own rows of
//     the shared output buffer via mulRows.
//   - Stage 4: block in Executor.Run until every task has returned (join).
//
// Inputs:
//   - a, b: conformable matrices (A.Cols == B.Rows).
//   - opts: WithWorkers(W) (default DefaultWorkers), WithExecutor(e)
//     (default workpool.Spawn{}).
//
// Returns:
//   - *Dense with shape (A.Rows × B.Cols), equal bit for bit to MulSequential(a, b).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (before dispatch).
//   - Executor errors (e.g. workpool.ErrPoolClosed); no result is returned then.
//
// Concurrency:
//   - Workers write disjoint row bands of the output and only read a and b,
//     so no lock is taken. Operands are never mutated.
//
// Complexity:
//   - Time O(r*n*c / W) wall-clock ideal, Space O(r*c + W).
func MulParallel(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	o := gatherOptions(opts...)

	ranges, err := partition.Split(a.r, o.workers)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	ranges = partition.NonEmpty(ranges)

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	tasks := make([]func(), len(ranges))
	for w, rg := range ranges {
		rg := rg
		tasks[w] = func() { mulRows(a, b, res, rg.Start, rg.End) }
	}

	// Join point: Run returns only after every row band is written.
	if err = o.executor.Run(tasks...); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}
