// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - A NaN cell never compares close.
//
// Errors:
//   - ErrInvalidTolerance, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range a.data {
		// Negated form so NaN fails.
		if !(math.Abs(a.data[idx]-b.data[idx]) <= atol+rtol*math.Abs(b.data[idx])) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
