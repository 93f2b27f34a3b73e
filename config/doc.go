// Package config holds the run configuration of the parlab command: file
// names, the shape range, parallelism and output switches.
//
// Precedence, lowest first: Default, the YAML file given to Load,
// PARLAB_* environment variables, command-line flags (applied by the
// caller). Validate checks the merged result.
package config
