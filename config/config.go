// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parlab/dataset"
	"github.com/katalvlaran/parlab/matrix"
)

// Config is the full run configuration.
type Config struct {
	RunID            int                `yaml:"run_id"`
	InputFile        string             `yaml:"input_file"`
	OutputFile       string             `yaml:"output_file"`
	TimesFilePattern string             `yaml:"times_file_pattern"` // one %d verb, the run id
	Shapes           dataset.ShapeRange `yaml:"shapes"`

	// Workers is the row-range count of every parallel multiply.
	Workers int `yaml:"workers"`
	// PoolSize is the number of pooled goroutines running row tasks;
	// 0 starts goroutines per call instead.
	PoolSize int `yaml:"pool_size"`
	// Seed of input generation; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	PrintResults bool `yaml:"print_results"`
	FullOutput   bool `yaml:"full_output"`
	Regenerate   bool `yaml:"regenerate"`
	Verbose      bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RunID:            1,
		InputFile:        "input.json",
		OutputFile:       "output.json",
		TimesFilePattern: "timeResults%d.csv",
		Shapes:           dataset.DefaultShapes,
		Workers:          matrix.DefaultWorkers,
		PoolSize:         runtime.GOMAXPROCS(0),
		PrintResults:     true,
	}
}

// Load overlays the YAML file at path on Default and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PARLAB_INPUT"); v != "" {
		c.InputFile = v
	}
	if v := os.Getenv("PARLAB_OUTPUT"); v != "" {
		c.OutputFile = v
	}
	for name, dst := range map[string]*int{
		"PARLAB_WORKERS":   &c.Workers,
		"PARLAB_POOL_SIZE": &c.PoolSize,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", name, v, ErrInvalidConfig)
		}
		*dst = n
	}

	return nil
}

// TimesFile returns the timing file name of this run.
func (c *Config) TimesFile() string {
	return fmt.Sprintf(c.TimesFilePattern, c.RunID)
}

// Validate reports every problem of c at once.
//
// Errors:
//   - ErrInvalidConfig, one wrapped instance per problem.
func (c *Config) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
	}

	if c.Workers < 1 {
		invalid("workers must be >= 1, got %d", c.Workers)
	}
	if c.PoolSize < 0 {
		invalid("pool_size must be >= 0, got %d", c.PoolSize)
	}
	if strings.TrimSpace(c.InputFile) == "" {
		invalid("input_file is empty")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		invalid("output_file is empty")
	}
	if strings.Count(c.TimesFilePattern, "%d") != 1 || strings.Count(c.TimesFilePattern, "%") != 1 {
		invalid("times_file_pattern %q must hold exactly one %%d", c.TimesFilePattern)
	}
	if err := c.Shapes.Validate(); err != nil {
		invalid("shapes: %v", err)
	}

	return errs
}
