// Package partition splits a contiguous index range into near-equal,
// contiguous sub-ranges for worker assignment.
//
// Given a length len and a part count P, Split returns exactly P half-open
// ranges [start, end) covering [0, len) in order, with no gaps and no
// overlaps. With k = len/P and m = len%P, the first m ranges hold k+1
// indices and the rest hold k:
//
//	len=10, P=4  →  [0,3) [3,6) [6,8) [8,10)
//	len=2,  P=4  →  [0,1) [1,2) [2,2) [2,2)
//
// When len < P the trailing ranges are empty (Start == End). That is a
// legal result, not an error; callers simply skip empty ranges.
//
// The layout is a pure function of (len, P), so the same inputs always
// produce the same assignment of indices to workers.
package partition
