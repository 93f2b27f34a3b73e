// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/parlab/matrix"
)

// Kind tags the payload of a Value.
type Kind int

const (
	// KindInvalid is the zero Value's kind; it holds nothing.
	KindInvalid Kind = iota
	// KindScalar marks a real number.
	KindScalar
	// KindMatrix marks a *matrix.Dense.
	KindMatrix
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMatrix:
		return "matrix"
	default:
		return "invalid"
	}
}

// Value is a tagged union: either a scalar or a matrix, never both.
// Construct with Scalar or MatrixValue.
type Value struct {
	kind   Kind
	scalar float64
	mat    *matrix.Dense
}

// Scalar wraps a real number.
func Scalar(v float64) Value { return Value{kind: KindScalar, scalar: v} }

// MatrixValue wraps a matrix. A nil matrix yields an invalid Value.
func MatrixValue(m *matrix.Dense) Value {
	if m == nil {
		return Value{}
	}
	return Value{kind: KindMatrix, mat: m}
}

// Kind returns the payload tag.
func (v Value) Kind() Kind { return v.kind }

// AsScalar returns the scalar payload and whether v is a scalar.
func (v Value) AsScalar() (float64, bool) { return v.scalar, v.kind == KindScalar }

// AsMatrix returns the matrix payload and whether v is a matrix.
func (v Value) AsMatrix() (*matrix.Dense, bool) { return v.mat, v.kind == KindMatrix }

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return strconv.FormatFloat(v.scalar, 'g', -1, 64)
	case KindMatrix:
		return v.mat.Summary()
	default:
		return "<invalid>"
	}
}

// Variables is the named input bag. Keys are unique by construction; the
// evaluator only reads from it.
type Variables map[string]Value

// Names returns the variable names in lexical order.
func (vs Variables) Names() []string {
	names := make([]string, 0, len(vs))
	for name := range vs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Matrix fetches a matrix-valued variable.
//
// Errors:
//   - ErrMissingVariable, ErrWrongKind.
func (vs Variables) Matrix(name string) (*matrix.Dense, error) {
	v, ok := vs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingVariable)
	}
	m, ok := v.AsMatrix()
	if !ok {
		return nil, fmt.Errorf("%q is %s, want matrix: %w", name, v.Kind(), ErrWrongKind)
	}

	return m, nil
}

// Scalar fetches a scalar-valued variable.
//
// Errors:
//   - ErrMissingVariable, ErrWrongKind.
func (vs Variables) Scalar(name string) (float64, error) {
	v, ok := vs[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrMissingVariable)
	}
	s, ok := v.AsScalar()
	if !ok {
		return 0, fmt.Errorf("%q is %s, want scalar: %w", name, v.Kind(), ErrWrongKind)
	}

	return s, nil
}
