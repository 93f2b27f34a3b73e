// Package dataset produces and persists the inputs and outputs of a parlab
// run.
//
// Files:
//
//	input file    JSON array, one object per shape, mapping each variable
//	              name to a JSON-encoded string: "[[1,2],[3,4]]" for a
//	              matrix, "1234.5" for a scalar.
//	results file  JSON object with the run identifiers and an array of
//	              {"E": "...", "MA": "..."} objects in the same encoding.
//	timing file   CSV with header "shape,time", time in milliseconds.
//
// Generate draws one input set of shape n: B and D are 1×n rows, MC, MD
// and MX are n×n, b is a scalar. Every value is uniform in [0, MaxValue).
package dataset
