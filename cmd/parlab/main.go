// SPDX-License-Identifier: MIT

// Command parlab generates (or loads) input sets of growing shape,
// evaluates E and MA on each with parallel matrix multiplication, prints
// inputs and results, and records results and timings to files.
//
// Usage:
//
//	parlab [runID] [flags]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/parlab/config"
)

// flags holds the command-line values; a flag overrides the configuration
// only when it was set explicitly.
type flags struct {
	configPath string
	input      string
	output     string
	workers    int
	poolSize   int
	seed       int64
	regenerate bool
	full       bool
	quiet      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var (
		f      flags
		logger *zap.Logger
		level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	)

	cmd := &cobra.Command{
		Use:   "parlab [runID]",
		Short: "Parallel matrix formula lab",
		Long: `parlab evaluates, for every input set,

  E  = B·MC + D·min(MC)
  MA = b·(MD·(MC − MX)) + (MX·MC)·b

with row-parallel, compensated matrix multiplication. Input sets are read
from the input file, or generated and written there when it is missing.
Results go to the output file, timings to timeResults<runID>.csv.

A non-numeric runID falls back to 1.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			zc.Level = level
			if f.verbose {
				level.SetLevel(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if len(args) == 1 {
				cfg.RunID = parseRunID(args[0])
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Verbose {
				level.SetLevel(zapcore.DebugLevel)
			}

			return runLab(cfg, logger, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "parlab.yaml", "YAML configuration file (optional)")
	fs.StringVarP(&f.input, "input", "i", "", "input file (default from config: input.json)")
	fs.StringVarP(&f.output, "output", "o", "", "results file (default from config: output.json)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "row ranges per multiplication")
	fs.IntVar(&f.poolSize, "pool-size", 0, "pooled goroutines for row tasks, 0 spawns per call")
	fs.Int64Var(&f.seed, "seed", 0, "generation seed, 0 seeds from the clock")
	fs.BoolVar(&f.regenerate, "regenerate", false, "generate inputs even if the input file exists")
	fs.BoolVar(&f.full, "full", false, "print result matrices in full")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "do not print inputs and results")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// apply copies every explicitly set flag onto cfg.
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.InputFile = f.input
	}
	if changed("output") {
		cfg.OutputFile = f.output
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("pool-size") {
		cfg.PoolSize = f.poolSize
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("regenerate") {
		cfg.Regenerate = f.regenerate
	}
	if changed("full") {
		cfg.FullOutput = f.full
	}
	if changed("quiet") {
		cfg.PrintResults = !f.quiet
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
}

// parseRunID accepts any integer; anything else is run 1.
func parseRunID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 1
	}
	return id
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
