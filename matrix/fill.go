// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// FillRandom overwrites every cell of m with a uniform integer in
// [0, DefaultFillBound) drawn from rng.
// Implementation:
//   - Stage 1: reject nil matrix, released matrix and nil generator.
//   - Stage 2: walk the flat buffer 0..n-1 and draw one value per cell.
//
// Determinism:
//   - Cells are visited in row-major order, so equal seeds yield equal matrices.
//
// Notes:
//   - The generator is passed explicitly; there is no package-level random state.
//     *rand.Rand is not safe for concurrent use, fill sequentially.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FillRandom(m *Dense, rng *rand.Rand) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxFill, ErrNilMatrix)
	}
	if m.Released() {
		return fmt.Errorf("%s: %w", ctxFill, ErrReleased)
	}
	if rng == nil {
		return fmt.Errorf("%s: %w", ctxFill, ErrNilRand)
	}

	for idx := range m.data {
		m.data[idx] = rng.Intn(DefaultFillBound)
	}

	return nil
}
