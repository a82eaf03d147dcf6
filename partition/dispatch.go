// SPDX-License-Identifier: MIT

package partition

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// Task computes the rows of one range.
type Task func(r Range) error

// Dispatch runs task once per range and returns after every call has finished.
// Implementation:
//   - Stage 1: start one goroutine per range except the last.
//   - Stage 2: run the last range on the calling goroutine.
//   - Stage 3: join all goroutines (barrier) and merge errors.
//
// Behavior highlights:
//   - A single range runs inline; no goroutine is created.
//   - There is no cancellation: a failing task does not stop its siblings.
//   - All writes made by tasks happen-before Dispatch returns.
//
// Returns:
//   - nil, or the errors of the inline task and the first failing goroutine joined.
func Dispatch(ranges []Range, task Task) error {
	if len(ranges) == 0 {
		return nil
	}

	last := len(ranges) - 1
	var g errgroup.Group
	for _, r := range ranges[:last] {
		r := r
		g.Go(func() error { return task(r) })
	}

	inlineErr := task(ranges[last])
	waitErr := g.Wait() // join barrier

	return errors.Join(inlineErr, waitErr)
}
