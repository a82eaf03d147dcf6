// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/matbench/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestParseSize covers silent clamping of the size argument.
func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want int
	}{
		{"1000", 1000},
		{"4", 4},
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"", 1},
		{"12abc", 12},
		{"  7", 7},
		{"+3", 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.arg, func(t *testing.T) {
			require.Equal(t, tc.want, config.ParseSize(tc.arg))
		})
	}
}

// TestParseTransposed: only the exact literal "-T1" turns transposition on.
func TestParseTransposed(t *testing.T) {
	t.Parallel()

	require.True(t, config.ParseTransposed("-T1"))
	for _, arg := range []string{"-T0", "-T", "T1", "-t1", "-T11", " -T1", "", "yes"} {
		require.Falsef(t, config.ParseTransposed(arg), "arg %q", arg)
	}
}

// TestParseThreads covers the clamp into [1,6] and every fallback path.
func TestParseThreads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want int
	}{
		{"-P1", 1},
		{"-P2", 2},
		{"-P4", 4},
		{"-P6", 6},
		{"-P7", 6},
		{"-P9", 6},
		{"-P100", 6},
		{"-P0", 1},
		{"-P-3", 1},
		{"-Pabc", 1},
		{"-P", 1},
		{"4", 1},
		{"P4", 1},
		{"", 1},
		{"-P3x", 3},
		{"x-P3", 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.arg, func(t *testing.T) {
			require.Equal(t, tc.want, config.ParseThreads(tc.arg))
		})
	}
}

// TestParse covers the full argument vector and the only error path.
func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]string{"1000", "-T1", "-P2"})
	require.NoError(t, err)
	require.Equal(t, config.Config{Size: 1000, Transposed: true, Threads: 2}, cfg)

	cfg, err = config.Parse([]string{"-5", "-T0", "-P9"})
	require.NoError(t, err)
	require.Equal(t, config.Config{Size: 1, Transposed: false, Threads: 6}, cfg)

	for _, args := range [][]string{nil, {"4"}, {"4", "-T1"}, {"4", "-T1", "-P2", "extra"}} {
		_, err = config.Parse(args)
		require.ErrorIs(t, err, config.ErrArgCount)
	}
}

// TestConfigLogObject checks the zerolog field names.
func TestConfigLogObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("config", config.Config{Size: 8, Transposed: true, Threads: 3}).Send()

	require.JSONEq(t,
		`{"level":"info","config":{"size":8,"transposed":true,"threads":3}}`,
		buf.String())
}
