// SPDX-License-Identifier: MIT
package multiply_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
	"github.com/katalvlaran/matbench/partition"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestLastWriteStandard pins the assignment semantics of the default policy:
// only the k = n-1 product survives, C[i][j] = A[i][n-1] * B[n-1][j].
// This is the reference benchmark's observable output and is kept on purpose;
// see TestSumMatchesReference for the accumulating policy.
func TestLastWriteStandard(t *testing.T) {
	t.Parallel()

	for _, threads := range []int{1, 2, 3, 6} {
		threads := threads
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			t.Parallel()
			const n = 13
			a, b := seededPair(t, n, 99)
			c, err := multiply.New(a, b, multiply.WithThreads(threads))
			require.NoError(t, err)
			require.Equal(t, n, c.Rows())
			require.Equal(t, n, c.Cols())

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					want := at(t, a, i, n-1) * at(t, b, n-1, j)
					require.Equalf(t, want, at(t, c, i, j), "C[%d][%d]", i, j)
				}
			}
		})
	}
}

// TestLastWriteTransposed: C[i][j] = A[i][n-1] * B[j][n-1].
func TestLastWriteTransposed(t *testing.T) {
	t.Parallel()

	const n = 11
	a, b := seededPair(t, n, 5)
	c, err := multiply.New(a, b, multiply.WithThreads(4), multiply.WithTransposed(true))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := at(t, a, i, n-1) * at(t, b, j, n-1)
			require.Equalf(t, want, at(t, c, i, j), "C[%d][%d]", i, j)
		}
	}
}

// TestThreadCountInvariance checks that every thread count yields the same C
// as the single-threaded run, for every policy and orientation.
func TestThreadCountInvariance(t *testing.T) {
	t.Parallel()

	const n = 37 // not divisible by 2..6, exercises the remainder
	a, b := seededPair(t, n, 2024)

	for _, policy := range []multiply.Policy{multiply.LastWrite, multiply.Sum} {
		for _, transposed := range []bool{false, true} {
			base, err := multiply.New(a, b,
				multiply.WithPolicy(policy), multiply.WithTransposed(transposed))
			require.NoError(t, err)

			for threads := 2; threads <= 6; threads++ {
				c, err := multiply.New(a, b, multiply.WithThreads(threads),
					multiply.WithPolicy(policy), multiply.WithTransposed(transposed))
				require.NoError(t, err)
				require.Truef(t, base.Equal(c), "policy=%v transposed=%v threads=%d", policy, transposed, threads)
			}
		}
	}
}

// TestSumMatchesReference cross-checks the accumulating policy against gonum.
func TestSumMatchesReference(t *testing.T) {
	t.Parallel()

	const n = 24
	a, b := seededPair(t, n, 7)
	ga, gb := toGonum(t, a), toGonum(t, b)

	var want, wantT mat.Dense
	want.Mul(ga, gb)
	wantT.Mul(ga, gb.T())

	c, err := multiply.New(a, b, multiply.WithPolicy(multiply.Sum), multiply.WithThreads(5))
	require.NoError(t, err)
	ct, err := multiply.New(a, b, multiply.WithPolicy(multiply.Sum), multiply.WithThreads(5), multiply.WithTransposed(true))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, int(want.At(i, j)), at(t, c, i, j))
			require.Equal(t, int(wantT.At(i, j)), at(t, ct, i, j))
		}
	}
}

// TestMoreThreadsThanRows covers the empty-partition case (size < threads).
func TestMoreThreadsThanRows(t *testing.T) {
	t.Parallel()

	a, b := seededPair(t, 2, 1)
	c, err := multiply.New(a, b, multiply.WithThreads(6), multiply.WithPolicy(multiply.Sum))
	require.NoError(t, err)

	ref, err := multiply.New(a, b, multiply.WithPolicy(multiply.Sum))
	require.NoError(t, err)
	require.True(t, ref.Equal(c))
}

// TestSizeOne is the smallest configuration: C = A[0][0]*B[0][0].
func TestSizeOne(t *testing.T) {
	t.Parallel()

	a, b := seededPair(t, 1, 3)
	c, err := multiply.New(a, b)
	require.NoError(t, err)
	require.Equal(t, at(t, a, 0, 0)*at(t, b, 0, 0), at(t, c, 0, 0))
}

// TestIntoRangeLeavesOtherRows checks a single range writes only its own rows.
func TestIntoRangeLeavesOtherRows(t *testing.T) {
	t.Parallel()

	const n = 6
	a, b := seededPair(t, n, 8)
	c, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, c.Set(i, j, -1)) // sentinel value, never a product
		}
	}

	require.NoError(t, multiply.IntoRange(a, b, c, partition.Range{Start: 2, Count: 3}))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i >= 2 && i < 5 {
				require.Equal(t, at(t, a, i, n-1)*at(t, b, n-1, j), at(t, c, i, j))
				continue
			}
			require.Equal(t, -1, at(t, c, i, j))
		}
	}
}

// TestIntoRangeBounds covers ranges outside [0, n).
func TestIntoRangeBounds(t *testing.T) {
	t.Parallel()

	a, b := seededPair(t, 4, 1)
	c, err := matrix.NewSquare(4)
	require.NoError(t, err)

	err = multiply.IntoRange(a, b, c, partition.Range{Start: 2, Count: 3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = multiply.IntoRange(a, b, c, partition.Range{Start: -1, Count: 1})
	require.ErrorIs(t, err, partition.ErrNegativeCount)
}

// TestIntoValidation covers operand errors.
func TestIntoValidation(t *testing.T) {
	t.Parallel()

	sq := func(n int) *matrix.Dense {
		m, err := matrix.NewSquare(n)
		require.NoError(t, err)
		return m
	}
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	gone := sq(2)
	gone.Release()

	tests := []struct {
		name    string
		a, b, c *matrix.Dense
		wantErr error
	}{
		{"nil a", nil, sq(2), sq(2), matrix.ErrNilMatrix},
		{"nil b", sq(2), nil, sq(2), matrix.ErrNilMatrix},
		{"nil c", sq(2), sq(2), nil, matrix.ErrNilMatrix},
		{"non-square a", rect, sq(2), sq(2), matrix.ErrNonSquare},
		{"b size mismatch", sq(2), sq(3), sq(2), matrix.ErrDimensionMismatch},
		{"c size mismatch", sq(2), sq(2), sq(3), matrix.ErrDimensionMismatch},
		{"released c", sq(2), sq(2), gone, matrix.ErrReleased},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, multiply.Into(tc.a, tc.b, tc.c), tc.wantErr)
		})
	}

	_, err = multiply.New(nil, sq(2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
