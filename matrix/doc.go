// Package matrix is the dense arithmetic engine of parlab.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with an immutable shape (rows, cols >= 1)
//     and no public mutator; every operation returns a freshly allocated result.
//   - Kahan, a compensated running sum used inside every dot product.
//   - Sequential arithmetic: Add, Sub, Scale, Min and MulSequential.
//   - MulParallel, which partitions the rows of A into DefaultWorkers (or
//     WithWorkers) contiguous bands, computes each band on a workpool.Executor
//     and joins before returning. Its result is bit-identical to MulSequential.
//   - A JSON codec: a matrix is an array of rows, each an array of numbers.
//
// Errors are sentinels (ErrDimensionMismatch, ErrMalformedInput, ...) wrapped
// with an operation tag; match them with errors.Is. Shape checks always run
// before any allocation or worker dispatch.
//
// See the examples in this package for usage patterns.
package matrix
