// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned by Plan when size < 1.
	ErrInvalidSize = errors.New("partition: size must be > 0")

	// ErrInvalidWorkers is returned by Plan when workers < 1.
	ErrInvalidWorkers = errors.New("partition: workers must be > 0")

	// ErrNegativeCount marks a range with Count < 0 or Start < 0.
	ErrNegativeCount = errors.New("partition: negative range")

	// ErrGap marks a plan whose ranges leave rows uncovered.
	ErrGap = errors.New("partition: rows not covered")

	// ErrOverlap marks a plan whose ranges cover a row twice.
	ErrOverlap = errors.New("partition: ranges overlap")
)

// Range is one partition descriptor: rows [Start, Start+Count).
type Range struct {
	Start int // first row (inclusive)
	Count int // number of rows, may be 0 when workers > size
}

// End returns the exclusive upper bound Start+Count.
func (r Range) End() int { return r.Start + r.Count }

// String renders the half-open interval, e.g. "[0,250)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End()) }

// Plan splits [0, size) into exactly workers contiguous ranges.
// Implementation:
//   - Stage 1: validate size ≥ 1 and workers ≥ 1.
//   - Stage 2: emit workers-1 ranges of rowsPer rows each.
//   - Stage 3: emit the last range with rowsPer+remainder rows.
//
// Behavior highlights:
//   - When workers > size, rowsPer is 0: leading ranges are empty and the last
//     range carries every row.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidWorkers.
//
// Complexity:
//   - Time O(workers), Space O(workers).
func Plan(size, workers int) ([]Range, error) {
	if size < 1 {
		return nil, fmt.Errorf("Plan(%d,%d): %w", size, workers, ErrInvalidSize)
	}
	if workers < 1 {
		return nil, fmt.Errorf("Plan(%d,%d): %w", size, workers, ErrInvalidWorkers)
	}

	rowsPer := size
	if workers > 1 {
		rowsPer = size / workers
	}
	remainder := size % workers

	ranges := make([]Range, workers)
	var p int
	for p = 0; p < workers-1; p++ {
		ranges[p] = Range{Start: p * rowsPer, Count: rowsPer}
	}
	ranges[p] = Range{Start: p * rowsPer, Count: rowsPer + remainder} // remainder rides on the last range

	return ranges, nil
}

// Validate checks that ranges tile [0, size) in order: each range starts where
// the previous one ended, no count is negative, and the last range ends at size.
//
// Errors:
//   - ErrNegativeCount, ErrOverlap, ErrGap.
//
// Complexity:
//   - Time O(len(ranges)), Space O(1).
func Validate(ranges []Range, size int) error {
	next := 0 // first row not yet covered
	for i, r := range ranges {
		if r.Start < 0 || r.Count < 0 {
			return fmt.Errorf("Validate: range %d %v: %w", i, r, ErrNegativeCount)
		}
		if r.Start < next {
			return fmt.Errorf("Validate: range %d %v: %w", i, r, ErrOverlap)
		}
		if r.Start > next {
			return fmt.Errorf("Validate: range %d %v: %w", i, r, ErrGap)
		}
		next = r.End()
	}
	if next > size {
		return fmt.Errorf("Validate: end %d > size %d: %w", next, size, ErrOverlap)
	}
	if next < size {
		return fmt.Errorf("Validate: end %d < size %d: %w", next, size, ErrGap)
	}

	return nil
}
