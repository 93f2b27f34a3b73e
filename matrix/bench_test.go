package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/parlab/matrix"
	"github.com/katalvlaran/parlab/workpool"
)

// BenchmarkMul compares the sequential kernel with the parallel one on
// both executors, for the square sizes the formulas are usually run on.
func BenchmarkMul(b *testing.B) {
	pool, err := workpool.New(matrix.DefaultWorkers)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Close()

	for _, n := range []int{64, 128, 256} {
		rng := rand.New(rand.NewSource(int64(n))) // deterministic seed for reproducibility
		x := RandomDense(b, rng, n, n, 1e4)
		y := RandomDense(b, rng, n, n, 1e4)

		b.Run(fmt.Sprintf("Sequential/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.MulSequential(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("ParallelSpawn/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.MulParallel(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("ParallelPool/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.MulParallel(x, y, matrix.WithExecutor(pool)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
