// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/parlab/formula"
)

const filePerm = 0o644

// Option configures LoadOrGenerate.
type Option func(*options)

type options struct {
	regenerate bool
	rng        *rand.Rand
	logger     *zap.Logger
}

// WithRegenerate forces generation even when the input file exists.
func WithRegenerate(on bool) Option {
	return func(o *options) { o.regenerate = on }
}

// WithSeed makes generation reproducible. Without it the seed is taken
// from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger; nil keeps zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// LoadOrGenerate returns the input sets stored at path. When the file is
// missing, or regeneration is requested, one set per shape of shapes is
// generated and written first; the result is always what reading the file
// yields.
//
// Errors:
//   - ErrInvalidShapeRange when generation is needed and shapes is invalid.
//   - ErrMalformedFile, or the underlying I/O error.
func LoadOrGenerate(path string, shapes ShapeRange, opts ...Option) ([]formula.Variables, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	_, err := os.Stat(path)
	switch {
	case err == nil && !o.regenerate:
		o.logger.Info("input file exists, reading", zap.String("path", path))
	case err == nil || errors.Is(err, fs.ErrNotExist):
		if err := shapes.Validate(); err != nil {
			return nil, fmt.Errorf("LoadOrGenerate: %w", err)
		}
		if o.rng == nil {
			o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		o.logger.Info("generating input",
			zap.String("path", path),
			zap.Int("start", shapes.Start),
			zap.Int("stop", shapes.Stop),
			zap.Int("step", shapes.Step))

		sets := make([]formula.Variables, 0, len(shapes.Shapes()))
		for _, n := range shapes.Shapes() {
			in, err := Generate(o.rng, n)
			if err != nil {
				return nil, fmt.Errorf("LoadOrGenerate: %w", err)
			}
			sets = append(sets, in.Variables())
		}
		if err := WriteInputs(path, sets); err != nil {
			return nil, fmt.Errorf("LoadOrGenerate: %w", err)
		}
	default:
		return nil, fmt.Errorf("LoadOrGenerate: %w", err)
	}

	return ReadInputs(path)
}

// WriteInputs writes sets to path as an indented JSON array of Records.
func WriteInputs(path string, sets []formula.Variables) error {
	recs := make([]Record, 0, len(sets))
	for i, vs := range sets {
		rec, err := Encode(vs)
		if err != nil {
			return fmt.Errorf("WriteInputs: set %d: %w", i, err)
		}
		recs = append(recs, rec)
	}

	return writeJSON(path, recs)
}

// ReadInputs reads the input sets stored at path.
//
// Errors:
//   - ErrMalformedFile when the file is not a JSON array of string maps,
//     or a value decodes to neither a number nor a matrix.
func ReadInputs(path string) ([]formula.Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadInputs: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("ReadInputs: %s: %v: %w", path, err, ErrMalformedFile)
	}
	if recs == nil {
		return nil, fmt.Errorf("ReadInputs: %s: not an array: %w", path, ErrMalformedFile)
	}

	sets := make([]formula.Variables, 0, len(recs))
	for i, rec := range recs {
		vs, err := Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("ReadInputs: set %d: %w", i, err)
		}
		sets = append(sets, vs)
	}

	return sets, nil
}

// Results is the content of the results file.
type Results struct {
	RunID   int       `json:"run_id"`
	Session uuid.UUID `json:"session"`
	Results []Record  `json:"results"`
}

// NewResults converts evaluation results to their on-disk form. A formula
// that failed is left out of its entry.
func NewResults(runID int, session uuid.UUID, results []formula.Result) (Results, error) {
	out := Results{RunID: runID, Session: session, Results: make([]Record, 0, len(results))}
	for i, res := range results {
		vs := formula.Variables{}
		if res.E != nil {
			vs[formula.NameE] = formula.MatrixValue(res.E)
		}
		if res.MA != nil {
			vs[formula.NameMA] = formula.MatrixValue(res.MA)
		}
		rec, err := Encode(vs)
		if err != nil {
			return Results{}, fmt.Errorf("NewResults: entry %d: %w", i, err)
		}
		out.Results = append(out.Results, rec)
	}

	return out, nil
}

// WriteResults writes r to path as indented JSON.
func WriteResults(path string, r Results) error {
	if err := writeJSON(path, r); err != nil {
		return fmt.Errorf("WriteResults: %w", err)
	}

	return nil
}

// ReadResults reads a results file.
func ReadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, fmt.Errorf("ReadResults: %w", err)
	}
	var r Results
	if err := json.Unmarshal(data, &r); err != nil {
		return Results{}, fmt.Errorf("ReadResults: %s: %v: %w", path, err, ErrMalformedFile)
	}

	return r, nil
}

// Timing is the elapsed time of one evaluation.
type Timing struct {
	Shape   int
	Elapsed time.Duration
}

// Millis returns Elapsed in fractional milliseconds.
func (t Timing) Millis() float64 {
	return float64(t.Elapsed) / float64(time.Millisecond)
}

// WriteTimings writes a "shape,time" CSV, time in milliseconds.
func WriteTimings(path string, ts []Timing) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("WriteTimings: %w", err)
	}

	w := csv.NewWriter(f)
	_ = w.Write([]string{"shape", "time"})
	for _, t := range ts {
		_ = w.Write([]string{strconv.Itoa(t.Shape), strconv.FormatFloat(t.Millis(), 'f', 3, 64)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("WriteTimings: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("WriteTimings: %w", err)
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, filePerm)
}
