// SPDX-License-Identifier: MIT

package partition

import "fmt"

// Range is a half-open interval [Start, End) of indices.
type Range struct {
	Start int // first index (inclusive)
	End   int // last index (exclusive)
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether r covers no index.
func (r Range) Empty() bool { return r.End <= r.Start }

// String implements fmt.Stringer as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Split partitions [0, length) into exactly parts contiguous ranges.
// Implementation:
//   - Stage 1: validate length >= 0 and parts >= 1.
//   - Stage 2: delegate to SplitRange with the zero-based range.
//
// Inputs:
//   - length: number of indices to distribute (>= 0).
//   - parts : number of ranges to produce (>= 1).
//
// Returns:
//   - []Range: len == parts, ordered, gap-free, possibly with empty tail ranges.
//
// Errors:
//   - ErrNegativeLength, ErrInvalidParts.
//
// Complexity:
//   - Time O(parts), Space O(parts).
func Split(length, parts int) ([]Range, error) {
	if length < 0 {
		return nil, fmt.Errorf("Split(%d,%d): %w", length, parts, ErrNegativeLength)
	}

	return SplitRange(Range{Start: 0, End: length}, parts)
}

// SplitRange partitions r into exactly parts contiguous sub-ranges.
// Sub-range i spans [r.Start + i*k + min(i,m), r.Start + (i+1)*k + min(i+1,m))
// where k = r.Len()/parts and m = r.Len()%parts.
//
// Errors:
//   - ErrInvertedRange when r.End < r.Start.
//   - ErrInvalidParts when parts < 1.
//
// Complexity:
//   - Time O(parts), Space O(parts).
func SplitRange(r Range, parts int) ([]Range, error) {
	if r.End < r.Start {
		return nil, fmt.Errorf("SplitRange(%v,%d): %w", r, parts, ErrInvertedRange)
	}
	if parts < 1 {
		return nil, fmt.Errorf("SplitRange(%v,%d): %w", r, parts, ErrInvalidParts)
	}

	k, m := r.Len()/parts, r.Len()%parts
	out := make([]Range, parts)
	for i := 0; i < parts; i++ {
		out[i] = Range{
			Start: r.Start + i*k + min(i, m),
			End:   r.Start + (i+1)*k + min(i+1, m),
		}
	}

	return out, nil
}

// NonEmpty returns the ranges of rs that cover at least one index, in order.
// The input slice is not modified.
func NonEmpty(rs []Range) []Range {
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			out = append(out, r)
		}
	}

	return out
}
