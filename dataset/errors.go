// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrInvalidShapeRange is returned when a ShapeRange has a
	// non-positive start or step, or stop <= start.
	ErrInvalidShapeRange = errors.New("dataset: invalid shape range")

	// ErrInvalidShape is returned by Generate for n < 1.
	ErrInvalidShape = errors.New("dataset: shape must be >= 1")

	// ErrMalformedFile is returned when a data file cannot be decoded.
	ErrMalformedFile = errors.New("dataset: malformed file")
)
