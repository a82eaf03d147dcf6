// Package matbench times dense square matrix multiplication with the output
// rows split across a fixed number of goroutines.
//
// Layout:
//
//	matrix/       — Dense integer grid (flat row-major buffer), random fill, validators
//	partition/    — contiguous row ranges (Plan, Validate) and the join barrier (Dispatch)
//	multiply/     — partitioned kernels: standard / transposed reads, LastWrite / Sum policies
//	config/       — positional argument interpretation with silent clamping
//	bench/        — allocate → fill → timed multiply → release, report and host logging
//	cmd/matbench/ — the command-line entry point
//
// Quick run:
//
//	go run ./cmd/matbench 1000 -T1 -P2
package matbench
