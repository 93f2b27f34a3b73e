// SPDX-License-Identifier: MIT

package formula_test

import (
	"fmt"

	"github.com/katalvlaran/parlab/formula"
	"github.com/katalvlaran/parlab/matrix"
)

func ExampleEvaluator_Evaluate() {
	mc, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1, 2}})
	d, _ := matrix.NewDenseFromRows([][]float64{{3, 4}})
	id, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})

	res, err := formula.NewEvaluator(formula.WithWorkers(2)).Evaluate(formula.Inputs{
		B: b, D: d, MC: mc, MD: id, MX: id, Beta: 1,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(res.E)
	fmt.Print(res.MA)
	// Output:
	// [10, 14]
	// [1, 4]
	// [6, 7]
}
