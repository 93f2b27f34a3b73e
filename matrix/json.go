// SPDX-License-Identifier: MIT

package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Compile-time assertions for the JSON codec.
var (
	_ json.Marshaler   = (*Dense)(nil)
	_ json.Unmarshaler = (*Dense)(nil)
)

// MarshalJSON encodes m as a row-major array of rows, e.g. [[1,2],[3,4]].
// encoding/json writes float64 in the shortest form that parses back to the
// same bits, so ParseJSON(MarshalJSON(m)) reproduces m exactly.
func (m *Dense) MarshalJSON() ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.MarshalJSON: %w", ErrNilMatrix)
	}

	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes an array of equal-length numeric rows into m.
// It is a constructor: a *Dense already handed out must not be decoded into.
//
// Errors:
//   - ErrMalformedInput for null, [], [[]], ragged rows or non-numeric cells.
func (m *Dense) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}

// ParseJSON decodes a row-major nested numeric array into a new Dense.
//
// Errors:
//   - ErrMalformedInput when the value is absent (null or blank), empty,
//     has an empty or ragged row, or holds anything but numbers.
func ParseJSON(data []byte) (*Dense, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("ParseJSON: absent value: %w", ErrMalformedInput)
	}

	var rows [][]float64
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, fmt.Errorf("ParseJSON: %v: %w", err, ErrMalformedInput)
	}
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("ParseJSON: row %d is null: %w", i, ErrMalformedInput)
		}
	}

	return NewDenseFromRows(rows)
}
