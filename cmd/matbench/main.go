// SPDX-License-Identifier: MIT

// Command matbench times a partitioned dense square matrix multiplication.
//
//	matbench [matrix size: 1..X] [transpose: -T0 (no), -T1 (yes)] [threads: -P1..6]
//	matbench 1000 -T1 -P2
//
// A and B are filled with random integers in [0,10) seeded from the wall
// clock. The report on standard output shows the configuration and the time
// spent in the multiply. A wrong argument count prints usage to standard error
// and exits with status 1.
//
// Set MATBENCH_LOG_LEVEL=debug to log host details and the row partition plan
// to standard error.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/config"
)

// logLevelEnv selects the zerolog level; unset or invalid means defaultLogLevel.
const (
	logLevelEnv     = "MATBENCH_LOG_LEVEL"
	defaultLogLevel = zerolog.WarnLevel
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// execute runs the command and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}

	cmd := newRootCmd(stdout, stderr, getenv)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, config.ErrArgCount) {
			fmt.Fprintf(stderr, "matbench: %v\n", err)
		}
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matbench <size> <-T0|-T1> <-P1..6>",
		Short: "Time a partitioned dense square matrix multiplication",
		// "-T1" and "-P2" are positional values, not flags.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse(args)
			if err != nil {
				fmt.Fprint(stderr, config.Usage)
				return err
			}

			log := newLogger(stderr, getenv(logLevelEnv))
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			res, err := bench.Run(cfg, rng, log)
			if err != nil {
				return err
			}

			return bench.WriteReport(stdout, res)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

// newLogger builds a console logger on w at the level named by level.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl := defaultLogLevel
	var bad bool
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			bad = true
		} else {
			lvl = parsed
		}
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().
		Logger()
	if bad {
		log.Warn().Str(logLevelEnv, level).Msg("unknown log level, using warn")
	}

	return log
}
