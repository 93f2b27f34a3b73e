// SPDX-License-Identifier: MIT

package partition

import "errors"

var (
	// ErrNegativeLength is returned when the range length to split is < 0.
	ErrNegativeLength = errors.New("partition: negative range length")

	// ErrInvalidParts is returned when the requested part count is < 1.
	ErrInvalidParts = errors.New("partition: part count must be >= 1")

	// ErrInvertedRange is returned when a Range has End < Start.
	ErrInvertedRange = errors.New("partition: range end before start")
)
