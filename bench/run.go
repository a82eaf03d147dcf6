// SPDX-License-Identifier: MIT

package bench

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/matbench/config"
	"github.com/katalvlaran/matbench/multiply"
	"github.com/katalvlaran/matbench/partition"
)

// Result is what one run reports.
type Result struct {
	Config  config.Config
	Elapsed time.Duration // dispatch + compute + join only
}

// Run executes the full cycle for cfg with matrices drawn from rng and returns
// the measured result. Matrices are released before Run returns.
func Run(cfg config.Config, rng *rand.Rand, log zerolog.Logger) (Result, error) {
	host := DetectHost()
	log.Debug().Object("config", cfg).Object("host", host).Msg("preparing workload")
	if cfg.Threads > host.GOMAXPROCS {
		log.Info().Int("threads", cfg.Threads).Int("gomaxprocs", host.GOMAXPROCS).
			Msg("more partitions than usable processors")
	}

	w, err := Prepare(cfg, rng)
	if err != nil {
		return Result{}, err
	}
	defer w.Release()

	if log.GetLevel() <= zerolog.DebugLevel {
		o := multiply.Resolve(w.opts...)
		ev := log.Debug().Int("threads", o.Threads()).Bool("transposed", o.Transposed()).
			Stringer("policy", o.Policy())
		if ranges, perr := partition.Plan(cfg.Size, o.Threads()); perr == nil {
			spans := make([]string, len(ranges))
			for i, r := range ranges {
				spans[i] = r.String()
			}
			ev = ev.Strs("partitions", spans)
		}
		ev.Msg("row plan")
	}

	elapsed, err := w.Multiply()
	if err != nil {
		return Result{}, err
	}
	log.Debug().Dur("elapsed", elapsed).Msg("multiply finished")

	return Result{Config: cfg, Elapsed: elapsed}, nil
}
