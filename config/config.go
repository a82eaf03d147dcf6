// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Argument conventions.
const (
	// ArgCount is the exact number of positional arguments.
	ArgCount = 3

	// MinSize is the size every non-positive or unparsable size becomes.
	MinSize = 1

	// MinThreads is the thread count used when the flag is missing or ≤ 1.
	MinThreads = 1

	// MaxThreads is the upper clamp for the thread count.
	MaxThreads = 6

	// TransposeOnFlag is the only spelling that enables transposed mode.
	TransposeOnFlag = "-T1"

	// ThreadsMarker prefixes the thread count, e.g. "-P4".
	ThreadsMarker = "-P"
)

// Usage is printed to standard error when the argument count is wrong.
const Usage = `
	ERROR: wrong number of arguments
	USAGE:   matbench [matrix size: 1..X] [transpose: -T0 (no), -T1 (yes)] [threads: -P1..6]
	EXAMPLE: matbench 1000 -T1 -P2

`

// ErrArgCount is returned by Parse when len(args) != ArgCount.
var ErrArgCount = errors.New("config: expected exactly 3 arguments")

// Config is the immutable run configuration.
type Config struct {
	Size       int  // matrix order, ≥ 1
	Transposed bool // read B with swapped indices
	Threads    int  // row partitions, in [MinThreads, MaxThreads]
}

// MarshalZerologObject lets a Config be attached to log events with Object.
func (c Config) MarshalZerologObject(e *zerolog.Event) {
	e.Int("size", c.Size).Bool("transposed", c.Transposed).Int("threads", c.Threads)
}

// Parse interprets args as <size> <transpose flag> <thread flag>.
//
// Errors:
//   - ErrArgCount when len(args) != ArgCount. Nothing else fails.
func Parse(args []string) (Config, error) {
	if len(args) != ArgCount {
		return Config{}, fmt.Errorf("Parse: got %d: %w", len(args), ErrArgCount)
	}

	return Config{
		Size:       ParseSize(args[0]),
		Transposed: ParseTransposed(args[1]),
		Threads:    ParseThreads(args[2]),
	}, nil
}

// ParseSize reads the leading integer of arg; results ≤ 0 become MinSize.
func ParseSize(arg string) int {
	if v := Atoi(arg); v > 0 {
		return v
	}

	return MinSize
}

// ParseTransposed reports whether arg is exactly TransposeOnFlag.
func ParseTransposed(arg string) bool {
	return arg == TransposeOnFlag
}

// ParseThreads reads the integer after ThreadsMarker and clamps it:
// values above MaxThreads become MaxThreads; values ≤ 1, garbage, or a missing
// marker become MinThreads.
func ParseThreads(arg string) int {
	idx := strings.Index(arg, ThreadsMarker)
	if idx < 0 {
		return MinThreads
	}

	t := Atoi(arg[idx+len(ThreadsMarker):])
	switch {
	case t > MaxThreads:
		return MaxThreads
	case t > MinThreads:
		return t
	default:
		return MinThreads
	}
}
