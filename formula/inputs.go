// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/parlab/matrix"
)

// Variable names of the input bag.
const (
	NameB    = "B"
	NameD    = "D"
	NameMC   = "MC"
	NameMD   = "MD"
	NameMX   = "MX"
	NameBeta = "b"
)

// Formula names, used for results and reports.
const (
	NameE  = "E"
	NameMA = "MA"
)

// Inputs is the typed record of everything the two formulas read.
// MD and MX are independent matrices.
type Inputs struct {
	B    *matrix.Dense // row operand of E
	D    *matrix.Dense // scaled addend of E
	MC   *matrix.Dense
	MD   *matrix.Dense
	MX   *matrix.Dense
	Beta float64 // the scalar b
}

// InputsFromVariables extracts the typed record from a variable bag.
// Every problem is reported, not just the first, combined with multierr.
//
// Errors:
//   - ErrMissingVariable, ErrWrongKind.
func InputsFromVariables(vs Variables) (Inputs, error) {
	var (
		in   Inputs
		errs error
		err  error
	)
	for _, slot := range []struct {
		name string
		dst  **matrix.Dense
	}{
		{NameB, &in.B},
		{NameD, &in.D},
		{NameMC, &in.MC},
		{NameMD, &in.MD},
		{NameMX, &in.MX},
	} {
		if *slot.dst, err = vs.Matrix(slot.name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if in.Beta, err = vs.Scalar(NameBeta); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return Inputs{}, fmt.Errorf("InputsFromVariables: %w", errs)
	}

	return in, nil
}

// Variables returns the bag form of in, e.g. for persistence.
func (in Inputs) Variables() Variables {
	return Variables{
		NameB:    MatrixValue(in.B),
		NameD:    MatrixValue(in.D),
		NameMC:   MatrixValue(in.MC),
		NameMD:   MatrixValue(in.MD),
		NameMX:   MatrixValue(in.MX),
		NameBeta: Scalar(in.Beta),
	}
}

// validateE checks the matrices E reads are present.
func (in Inputs) validateE() error {
	return requireMatrices(map[string]*matrix.Dense{NameB: in.B, NameD: in.D, NameMC: in.MC})
}

// validateMA checks the matrices MA reads are present.
func (in Inputs) validateMA() error {
	return requireMatrices(map[string]*matrix.Dense{NameMC: in.MC, NameMD: in.MD, NameMX: in.MX})
}

func requireMatrices(ms map[string]*matrix.Dense) error {
	var errs error
	for _, name := range []string{NameB, NameD, NameMC, NameMD, NameMX} {
		if m, ok := ms[name]; ok && m == nil {
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", name, ErrNilInput))
		}
	}

	return errs
}
