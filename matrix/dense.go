// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep allocation and release symmetric: one make() in NewDense, one drop in Release.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel stays reachable through %w, so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols); both are 0 once released.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []Element // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and rows*cols <= MaxElements;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer of rows*cols elements.
//
// Errors:
//   - ErrInvalidDimensions (non-positive shape, or too many cells).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	// rows*cols must neither wrap around nor exceed the cell cap.
	if rows > MaxElements/cols {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]Element, rows*cols), // make() zero-fills deterministically
	}, nil
}

// NewSquare creates an n×n zero matrix. It is NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// Rows returns the row count (0 after Release).
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (0 after Release).
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns a bare sentinel.
// Public methods wrap the sentinel with method name and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.data == nil {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrReleased after Release.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (Element, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrReleased after Release.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v Element) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns row i as a slice aliasing the backing buffer.
// MAIN DESCRIPTION:
//   - Zero-copy access for hot loops: writes through the slice mutate the matrix.
//
// Behavior highlights:
//   - The returned slice has len == cap == Cols(), so an append can never
//     spill into row i+1.
//
// Errors:
//   - ErrOutOfRange when i is out of bounds; ErrReleased after Release.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]Element, error) {
	off, err := m.indexOf(i, 0)
	if err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	end := off + m.c

	return m.data[off:end:end], nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]Element, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data { // flat 0..n-1
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// Release drops the backing buffer and zeroes the shape.
// Every accessor returns ErrReleased afterwards. Calling Release twice is a no-op.
// Complexity: O(1).
func (m *Dense) Release() {
	m.data = nil
	m.r, m.c = 0, 0
}

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.data == nil }

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
