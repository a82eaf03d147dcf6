// SPDX-License-Identifier: MIT

// Package config turns the three positional command-line arguments into an
// immutable run configuration.
//
//	matbench <size> <-T0|-T1> <-P1..6>
//
// Interpretation never rejects a value: a bad size becomes 1, any transpose
// flag other than "-T1" means false, and the thread count is clamped into
// [MinThreads, MaxThreads]. The only error is a wrong argument count
// (ErrArgCount).
package config
