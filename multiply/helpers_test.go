// SPDX-License-Identifier: MIT
package multiply_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// seededPair returns two n×n matrices filled from one seeded source,
// in the same order the benchmark fills A then B.
func seededPair(tb testing.TB, n int, seed int64) (*matrix.Dense, *matrix.Dense) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	b, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	require.NoError(tb, matrix.FillRandom(a, rng))
	require.NoError(tb, matrix.FillRandom(b, rng))

	return a, b
}

func at(tb testing.TB, m *matrix.Dense, i, j int) int {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// toGonum copies m into a gonum dense matrix (values are small, so exact).
func toGonum(tb testing.TB, m *matrix.Dense) *mat.Dense {
	tb.Helper()
	n := m.Rows()
	data := make([]float64, 0, n*m.Cols())
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		require.NoError(tb, err)
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(n, m.Cols(), data)
}
