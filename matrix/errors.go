// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Operations wrap sentinels as "<Op>: <sentinel>" through matrixErrorf;
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> worker dispatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	// It is always detected before any computation or worker dispatch.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedInput indicates a source representation that is not a
	// well-formed rectangular numeric array (absent, empty, ragged, non-numeric).
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidTolerance indicates a NaN or infinite tolerance passed to AllClose.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")
)
