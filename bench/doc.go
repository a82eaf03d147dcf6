// SPDX-License-Identifier: MIT

// Package bench runs one allocate → fill → multiply → release cycle and
// reports the wall-clock time of the multiply.
//
// The timed region covers only partition dispatch, computation and the join
// barrier; allocation, random fill and release are outside it.
package bench
