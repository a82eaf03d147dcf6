// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/partition"
)

// error context tags
const (
	opInto      = "Into"
	opIntoRange = "IntoRange"
	opNew       = "New"
)

// multiplyErrorf tags err with the operation name, keeping the sentinel reachable.
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("multiply.%s: %w", tag, err)
}

// operands holds row views of A, B and C. The slices alias the matrices'
// backing buffers; building them costs O(n) and copies no cells.
type operands struct {
	a, b, c [][]matrix.Element
	n       int
}

// validate checks that a, b and c are square and of the same size.
func validate(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return err
	}

	return matrix.ValidateSameShape(a, c)
}

// rowViews collects Row(0..n-1) of m.
func rowViews(m *matrix.Dense) ([][]matrix.Element, error) {
	rows := make([][]matrix.Element, m.Rows())
	for i := range rows {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return rows, nil
}

func newOperands(a, b, c *matrix.Dense) (operands, error) {
	if err := validate(a, b, c); err != nil {
		return operands{}, err
	}
	ra, err := rowViews(a)
	if err != nil {
		return operands{}, err
	}
	rb, err := rowViews(b)
	if err != nil {
		return operands{}, err
	}
	rc, err := rowViews(c)
	if err != nil {
		return operands{}, err
	}

	return operands{a: ra, b: rb, c: rc, n: a.Rows()}, nil
}

// Into writes the product of a and b into c, partitioning c's rows across
// Options.Threads() partitions.
// Implementation:
//   - Stage 1: validate a, b, c are square with equal size; resolve options.
//   - Stage 2: partition.Plan(n, threads) and check the plan tiles [0, n).
//   - Stage 3: partition.Dispatch the row kernel; the last range runs inline.
//
// Behavior highlights:
//   - With one thread the whole product runs on the caller, no goroutine.
//   - c must not alias a or b.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrReleased, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch; partition errors on an invalid plan.
//
// Complexity:
//   - Time O(n³) split across threads, Space O(n) for row views.
func Into(a, b, c *matrix.Dense, opts ...Option) error {
	ops, err := newOperands(a, b, c)
	if err != nil {
		return multiplyErrorf(opInto, err)
	}
	o := gatherOptions(opts...)

	ranges, err := partition.Plan(ops.n, o.threads)
	if err != nil {
		return multiplyErrorf(opInto, err)
	}
	if err = partition.Validate(ranges, ops.n); err != nil {
		return multiplyErrorf(opInto, err)
	}

	kernel := pickKernel(o)
	err = partition.Dispatch(ranges, func(r partition.Range) error {
		kernel(ops, r)
		return nil
	})
	if err != nil {
		return multiplyErrorf(opInto, err)
	}

	return nil
}

// IntoRange computes only the rows of c inside r, on the calling goroutine.
// Rows outside r are left untouched. Options.Threads() is ignored.
//
// Errors:
//   - the validation errors of Into; partition.ErrNegativeCount or
//     matrix.ErrOutOfRange when r does not fit inside [0, n).
func IntoRange(a, b, c *matrix.Dense, r partition.Range, opts ...Option) error {
	ops, err := newOperands(a, b, c)
	if err != nil {
		return multiplyErrorf(opIntoRange, err)
	}
	if r.Start < 0 || r.Count < 0 {
		return multiplyErrorf(opIntoRange, fmt.Errorf("%v: %w", r, partition.ErrNegativeCount))
	}
	if r.End() > ops.n {
		return multiplyErrorf(opIntoRange, fmt.Errorf("%v: %w", r, matrix.ErrOutOfRange))
	}

	pickKernel(gatherOptions(opts...))(ops, r)

	return nil
}

// New allocates C and returns A × B computed by Into.
func New(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, multiplyErrorf(opNew, err)
	}
	c, err := matrix.NewSquare(a.Rows())
	if err != nil {
		return nil, multiplyErrorf(opNew, err)
	}
	if err = Into(a, b, c, opts...); err != nil {
		return nil, multiplyErrorf(opNew, err)
	}

	return c, nil
}
