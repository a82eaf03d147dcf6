// SPDX-License-Identifier: MIT

// Package partition splits a row index range [0, size) into contiguous,
// disjoint chunks and runs one task per chunk behind a join barrier.
//
// Partitioning scheme:
//
//	rowsPer   = workers > 1 ? size/workers : size
//	remainder = size % workers
//	range p   = [p*rowsPer, p*rowsPer+rowsPer)            for p < workers-1
//	last      = [p*rowsPer, p*rowsPer+rowsPer+remainder)  for p = workers-1
//
// The remainder is folded into the LAST range, which Dispatch executes on the
// calling goroutine; every other range runs on its own goroutine.
//
// Safety contract:
//
//	Ranges produced by Plan never overlap and their union is exactly [0, size).
//	Tasks that write only to rows inside their own range therefore need no
//	locks: Validate checks the contract, Dispatch's barrier publishes all writes
//	to the caller.
package partition
