// SPDX-License-Identifier: MIT

// Package matrix: domain-facing constants shared by the fill routine and the
// benchmark layer.
package matrix

import "math"

// Element is the cell type of every benchmark matrix (small-range integers).
type Element = int

// Fill policy.
const (
	// DefaultFillBound is the exclusive upper bound of random cell values:
	// FillRandom draws uniformly from [0, DefaultFillBound).
	DefaultFillBound = 10
)

// MaxElements caps rows*cols for a single matrix. Larger shapes fail with
// ErrInvalidDimensions instead of overflowing the length or panicking in make.
const MaxElements = min(math.MaxInt/8, 1<<40)

// Formatting literals used by String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// error context tags
const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxFill = "FillRandom"
	ctxNew  = "NewDense"
)
