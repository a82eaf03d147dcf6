// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the partitioned kernels.
//   - Option / Options with documented defaults (single source of truth).
//   - WithX constructors panic on nonsensical values (programmer error).
package multiply

import "fmt"

// Policy selects how the inner k-loop combines products into C[i][j].
type Policy int

const (
	// LastWrite assigns on every k; C[i][j] ends up as the k = n-1 product.
	LastWrite Policy = iota
	// Sum accumulates over k; C[i][j] is the dot product of row i and column j.
	Sum
)

// String returns "last-write" or "sum".
func (p Policy) String() string {
	switch p {
	case LastWrite:
		return "last-write"
	case Sum:
		return "sum"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Defaults.
const (
	// DefaultThreads runs the whole product on the calling goroutine.
	DefaultThreads = 1

	// DefaultTransposed reads B as stored (B[k][j]).
	DefaultTransposed = false

	// DefaultPolicy keeps the reference benchmark's assignment semantics.
	DefaultPolicy = LastWrite
)

// ---------- Internal panic messages ----------

const (
	panicThreadsInvalid = "multiply: WithThreads: n must be >= 1"
	panicPolicyInvalid  = "multiply: WithPolicy: unknown policy"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved kernel configuration.
type Options struct {
	threads    int    // number of row partitions (>= 1)
	transposed bool   // read B[j][k] instead of B[k][j]
	policy     Policy // LastWrite or Sum
}

// Threads returns the number of row partitions.
func (o Options) Threads() int { return o.threads }

// Transposed reports whether B is read with swapped indices.
func (o Options) Transposed() bool { return o.transposed }

// Policy returns the accumulation policy.
func (o Options) Policy() Policy { return o.policy }

// WithThreads sets the number of row partitions (and therefore goroutines: n-1
// workers plus the caller).
// Panics when n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = n }
}

// WithTransposed selects transposed reads of B when on is true.
func WithTransposed(on bool) Option {
	return func(o *Options) { o.transposed = on }
}

// WithPolicy selects the accumulation policy.
// Panics on a value other than LastWrite or Sum.
func WithPolicy(p Policy) Option {
	if p != LastWrite && p != Sum {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		threads:    DefaultThreads,
		transposed: DefaultTransposed,
		policy:     DefaultPolicy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Resolve returns the effective Options for opts, for reporting and logging.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }
