// Package parlab is a small laboratory for fork-join parallelism over dense
// matrices: it evaluates two fixed formulas on inputs of growing shape and
// measures how long each evaluation takes.
//
// 🚀 What does parlab compute?
//
//	E  = B·MC + D·min(MC)
//	MA = b·(MD·(MC − MX)) + (MX·MC)·b
//
// B and D are 1×n rows, MC, MD and MX are n×n, b is a scalar. Every "·"
// between matrices is a row-parallel multiplication whose cells are
// compensated (Kahan) dot products, so the parallel result is bit-for-bit
// the sequential one.
//
// ✨ Layout
//
//	partition/  split [0, n) into P near-equal contiguous ranges
//	workpool/   Executor: a reusable worker Pool (go-highway) or per-call Spawn
//	matrix/     Dense, Kahan, Add/Sub/Scale/Min, MulSequential, MulParallel, JSON
//	formula/    Value/Variables, typed Inputs, concurrent Evaluator for E and MA
//	report/     structured Records, a styled Console, a Recorder for tests
//	dataset/    input generation, input/results JSON files, timing CSV
//	config/     YAML configuration with environment overrides
//	cmd/parlab  the command line: parlab [runID] [flags]
//
// Quick start:
//
//	go run ./cmd/parlab 2 --seed 7 --pool-size 4
//
// reads (or generates) input.json, prints every input and result, writes
// output.json and timeResults2.csv.
package parlab
