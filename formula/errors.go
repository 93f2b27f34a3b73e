// SPDX-License-Identifier: MIT

package formula

import "errors"

var (
	// ErrMissingVariable is returned when a required variable is absent from the bag.
	ErrMissingVariable = errors.New("formula: missing variable")

	// ErrWrongKind is returned when a variable holds a scalar where a matrix
	// is required, or the other way round.
	ErrWrongKind = errors.New("formula: variable has the wrong kind")

	// ErrNilInput is returned when a matrix input of Inputs is nil.
	ErrNilInput = errors.New("formula: nil matrix input")
)
