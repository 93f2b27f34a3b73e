// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/parlab/formula"
	"github.com/katalvlaran/parlab/matrix"
)

// MaxValue is the exclusive upper bound of generated values.
const MaxValue = 10000.0

// ShapeRange enumerates the shapes of a run: Start, Start+Step, ... while
// below Stop.
type ShapeRange struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
	Step  int `yaml:"step"`
}

// DefaultShapes is 100, 110, ..., 290.
var DefaultShapes = ShapeRange{Start: 100, Stop: 300, Step: 10}

// Validate reports ErrInvalidShapeRange for a range that yields no shape.
func (r ShapeRange) Validate() error {
	if r.Start < 1 || r.Step < 1 || r.Stop <= r.Start {
		return fmt.Errorf("ShapeRange %d..%d step %d: %w", r.Start, r.Stop, r.Step, ErrInvalidShapeRange)
	}

	return nil
}

// Shapes lists the shapes in increasing order; nil for an invalid range.
func (r ShapeRange) Shapes() []int {
	if r.Validate() != nil {
		return nil
	}
	shapes := make([]int, 0, (r.Stop-r.Start+r.Step-1)/r.Step)
	for n := r.Start; n < r.Stop; n += r.Step {
		shapes = append(shapes, n)
	}

	return shapes
}

// Generate draws one input set of shape n from rng.
//
// Errors:
//   - ErrInvalidShape for n < 1.
func Generate(rng *rand.Rand, n int) (formula.Inputs, error) {
	if n < 1 {
		return formula.Inputs{}, fmt.Errorf("Generate(%d): %w", n, ErrInvalidShape)
	}

	return formula.Inputs{
		B:    randomDense(rng, 1, n),
		D:    randomDense(rng, 1, n),
		MC:   randomDense(rng, n, n),
		MD:   randomDense(rng, n, n),
		MX:   randomDense(rng, n, n),
		Beta: rng.Float64() * MaxValue,
	}, nil
}

func randomDense(rng *rand.Rand, r, c int) *matrix.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64() * MaxValue
	}
	// r, c >= 1 and len(data) == r*c: cannot fail.
	m, _ := matrix.NewDenseFromData(r, c, data)

	return m
}
