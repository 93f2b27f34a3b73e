// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlab/matrix"
)

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4 + 1e-9}})

	ok, err := matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, -1e-6, 0) // sign ignored
	require.NoError(t, err)
	require.True(t, ok)

	nan := MustFromRows(t, [][]float64{{1, 2}, {3, math.NaN()}})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}})
	_, err := matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidTolerance)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrInvalidTolerance)
	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(a, MustFromRows(t, [][]float64{{1}, {2}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulSequential_CloseToNaive checks the compensated product against a
// plain triple loop; the two differ only by rounding.
func TestMulSequential_CloseToNaive(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(23))
	a := RandomDense(t, rng, 9, 40, 1e4)
	b := RandomDense(t, rng, 40, 7, 1e4)

	naive := make([][]float64, 9)
	for i := range naive {
		naive[i] = make([]float64, 7)
		for j := range naive[i] {
			for k := 0; k < 40; k++ {
				naive[i][j] += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
		}
	}

	got, err := matrix.MulSequential(a, b)
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, MustFromRows(t, naive), 1e-9, 1e-4)
	require.NoError(t, err)
	require.True(t, ok)
}
