// SPDX-License-Identifier: MIT
// Package matrix provides the sequential arithmetic on Dense matrices:
// element-wise addition and subtraction, scalar scaling, minimum reduction
// and compensated matrix multiplication. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every function allocates a fresh result; operands are never mutated.
//   - The parallel multiply lives in impl_parallel.go and shares dotKahan
//     with MulSequential.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMin         = "Min"
	opMulSeq      = "MulSequential"
	opMulParallel = "MulParallel"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//
// Notes:
//   - sign*b is exact for sign = ±1, so Sub(a,b) == a - b bit for bit.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Multiplication commutes, so Scale covers both alpha*M and M*alpha.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Min returns the smallest cell of m. The shape invariant (r,c >= 1)
// guarantees at least one cell. NaN cells never win a comparison.
//
// Errors:
//   - ErrNilMatrix.
func Min(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMin, err)
	}

	low := m.data[0]
	for _, v := range m.data[1:] {
		if v < low {
			low = v
		}
	}

	return low, nil
}

// MulSequential performs C = A × B on the calling goroutine.
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B) (non-nil, A.Cols == B.Rows).
//   - Stage 2: for every (i, j) in i→j order, C[i,j] = dotKahan(A, B, i, j),
//     which accumulates A[i,k]*B[k,j] strictly in increasing k.
//
// Returns:
//   - *Dense with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - The per-cell summation order is fixed; it defines the exact floating-point
//     result that MulParallel reproduces.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulSequential(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulSeq, err)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	mulRows(a, b, res, 0, a.r)

	return res, nil
}

// mulRows fills rows [start, end) of out with dotKahan cells.
// It touches no other row of out, which is what lets MulParallel hand
// disjoint row bands to concurrent workers without locking.
func mulRows(a, b, out *Dense, start, end int) {
	var i, j, base int
	for i = start; i < end; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] = dotKahan(a, b, i, j)
		}
	}
}
