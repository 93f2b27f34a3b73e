// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/parlab/matrix"
)

// TestMain fails the package if any row worker outlives its multiply.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// RandomDense fills an r×c matrix with values in [-scale, scale) from rng.
// Mixed signs and magnitudes make rounding differences visible if the
// summation order ever changes.
func RandomDense(t testing.TB, rng *rand.Rand, r, c int, scale float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * scale
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)
	return m
}

// RequireBitIdentical asserts same shape and identical bits in every cell.
func RequireBitIdentical(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.Equalf(t, MustAt(t, want, i, j), MustAt(t, got, i, j), "cell (%d,%d)", i, j)
		}
	}
	require.True(t, want.Equal(got))
}
