// SPDX-License-Identifier: MIT

// Package matrix provides the integer grid used by the multiplication benchmark.
//
// What & Why:
//
//	Dense is a square-or-rectangular grid of int values stored in ONE flat,
//	row-major buffer (offset = i*cols + j). A single owned buffer replaces the
//	per-row allocations of array-of-pointer layouts: allocation and release are
//	symmetric and no row can be freed twice or leaked.
//
// Surface:
//
//   - NewDense / NewSquare: zero-filled allocation with shape validation.
//   - At / Set: bounds-checked accessors returning ErrOutOfRange.
//   - Row: unchecked row slice for hot loops (kernels in package multiply).
//   - FillRandom: populate every cell from an explicitly passed *rand.Rand.
//   - Release: drop the backing buffer; the matrix reports a 0×0 shape after.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSameShape.
//
// Complexity:
//
//	Rows/Cols/At/Set/Row run in O(1). NewDense, Clone, FillRandom and Equal
//	run in O(rows*cols).
package matrix
