// Package formula evaluates the two formulas of parlab over a bag of named
// inputs:
//
//	E  = B·MC + D·min(MC)
//	MA = b·(MD·(MC − MX)) + (MX·MC)·b
//
// where every "·" between matrices is matrix.MulParallel.
//
// Inputs arrive either as a Variables bag (string → Value, where a Value is
// a tagged union of Scalar and MatrixValue) or directly as the typed Inputs
// record. InputsFromVariables converts the former into the latter and
// reports missing or mistyped entries up front.
//
// Evaluate runs E and MA as two concurrent tasks and, inside MA, its two
// products as two further concurrent tasks. It waits for all of them. A
// failure in one formula never stops the other: both outcomes are kept in
// the Result and every failure is also returned, combined, as the error.
package formula
