// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlab/formula"
	"github.com/katalvlaran/parlab/matrix"
)

// Record is the on-disk form of one variable bag: name → JSON text.
type Record map[string]string

// Encode converts a variable bag to its on-disk form. Scalars become their
// shortest round-trip decimal text, matrices a nested array.
//
// Errors:
//   - ErrMalformedFile for an invalid Value.
func Encode(vs formula.Variables) (Record, error) {
	rec := make(Record, len(vs))
	for _, name := range vs.Names() {
		v := vs[name]
		if s, ok := v.AsScalar(); ok {
			rec[name] = strconv.FormatFloat(s, 'g', -1, 64)
			continue
		}
		m, ok := v.AsMatrix()
		if !ok {
			return nil, fmt.Errorf("Encode: %q holds no value: %w", name, ErrMalformedFile)
		}
		text, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("Encode: %q: %w", name, err)
		}
		rec[name] = string(text)
	}

	return rec, nil
}

// Decode converts an on-disk record back to a variable bag. Text that
// parses as a number is a scalar; anything else must be a matrix.
//
// Errors:
//   - ErrMalformedFile for a non-finite scalar (NaN, Inf).
//   - ErrMalformedFile wrapping matrix.ErrMalformedInput for bad matrix text.
func Decode(rec Record) (formula.Variables, error) {
	vs := make(formula.Variables, len(rec))
	for name, text := range rec {
		if s, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return nil, fmt.Errorf("Decode: %q: non-finite scalar %q: %w", name, text, ErrMalformedFile)
			}
			vs[name] = formula.Scalar(s)
			continue
		}
		m, err := matrix.ParseJSON([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("Decode: %q: %w: %w", name, ErrMalformedFile, err)
		}
		vs[name] = formula.MatrixValue(m)
	}

	return vs, nil
}
