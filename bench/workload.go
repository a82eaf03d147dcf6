// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/matbench/config"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
)

// Workload owns the three matrices of one run.
// A and B are filled at Prepare; C receives the product.
type Workload struct {
	Config config.Config
	A, B   *matrix.Dense
	C      *matrix.Dense

	opts []multiply.Option
}

// Prepare allocates A, B and C of order cfg.Size and fills A then B from rng.
// Extra multiply options are appended after the ones derived from cfg, so they
// can select multiply.Sum; the thread count and orientation come from cfg.
//
// Errors:
//   - matrix.ErrInvalidDimensions when cfg.Size < 1 or cfg.Size² exceeds
//     matrix.MaxElements; matrix.ErrNilRand.
func Prepare(cfg config.Config, rng *rand.Rand, opts ...multiply.Option) (*Workload, error) {
	a, err := matrix.NewSquare(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("bench: allocate A: %w", err)
	}
	b, err := matrix.NewSquare(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("bench: allocate B: %w", err)
	}
	c, err := matrix.NewSquare(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("bench: allocate C: %w", err)
	}

	if err = matrix.FillRandom(a, rng); err != nil {
		return nil, fmt.Errorf("bench: fill A: %w", err)
	}
	if err = matrix.FillRandom(b, rng); err != nil {
		return nil, fmt.Errorf("bench: fill B: %w", err)
	}

	base := []multiply.Option{
		multiply.WithThreads(max(cfg.Threads, config.MinThreads)),
		multiply.WithTransposed(cfg.Transposed),
	}

	return &Workload{
		Config: cfg,
		A:      a,
		B:      b,
		C:      c,
		opts:   append(base, opts...),
	}, nil
}

// Multiply computes C and returns the time spent in dispatch, compute and join.
func (w *Workload) Multiply() (time.Duration, error) {
	start := time.Now()
	err := multiply.Into(w.A, w.B, w.C, w.opts...)
	elapsed := time.Since(start)
	if err != nil {
		return 0, fmt.Errorf("bench: %w", err)
	}

	return elapsed, nil
}

// Release drops all three buffers. Safe to call more than once.
func (w *Workload) Release() {
	w.A.Release()
	w.B.Release()
	w.C.Release()
}
