// SPDX-License-Identifier: MIT

package multiply

import (
	"github.com/katalvlaran/matbench/partition"
)

// rowKernel fills rows [r.Start, r.End()) of ops.c.
// It only writes ops.c[i] for i inside r and only reads ops.a and ops.b.
type rowKernel func(ops operands, r partition.Range)

// pickKernel returns the specialized loop for (policy, transposed), keeping
// branches out of the i→j→k nest.
func pickKernel(o Options) rowKernel {
	switch {
	case o.policy == Sum && o.transposed:
		return sumTransposed
	case o.policy == Sum:
		return sumStandard
	case o.transposed:
		return lastWriteTransposed
	default:
		return lastWriteStandard
	}
}

// lastWriteStandard: C[i][j] = A[i][k] * B[k][j] for every k.
func lastWriteStandard(ops operands, r partition.Range) {
	n, b := ops.n, ops.b
	var i, j, k int
	for i = r.Start; i < r.End(); i++ {
		ai, ci := ops.a[i], ops.c[i]
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				ci[j] = ai[k] * b[k][j]
			}
		}
	}
}

// lastWriteTransposed: C[i][j] = A[i][k] * B[j][k] for every k.
func lastWriteTransposed(ops operands, r partition.Range) {
	n := ops.n
	var i, j, k int
	for i = r.Start; i < r.End(); i++ {
		ai, ci := ops.a[i], ops.c[i]
		for j = 0; j < n; j++ {
			bj := ops.b[j]
			for k = 0; k < n; k++ {
				ci[j] = ai[k] * bj[k]
			}
		}
	}
}

// sumStandard: C[i][j] = Σ_k A[i][k] * B[k][j].
func sumStandard(ops operands, r partition.Range) {
	n, b := ops.n, ops.b
	var i, j, k, acc int
	for i = r.Start; i < r.End(); i++ {
		ai, ci := ops.a[i], ops.c[i]
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += ai[k] * b[k][j]
			}
			ci[j] = acc
		}
	}
}

// sumTransposed: C[i][j] = Σ_k A[i][k] * B[j][k].
func sumTransposed(ops operands, r partition.Range) {
	n := ops.n
	var i, j, k, acc int
	for i = r.Start; i < r.End(); i++ {
		ai, ci := ops.a[i], ops.c[i]
		for j = 0; j < n; j++ {
			bj := ops.b[j]
			acc = 0
			for k = 0; k < n; k++ {
				acc += ai[k] * bj[k]
			}
			ci[j] = acc
		}
	}
}
