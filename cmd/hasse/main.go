// SPDX-License-Identifier: MIT
// Command hasse builds a lattice family and reports on it.
//
//	$ hasse info -family partition -n 4
//	$ hasse dot  -family divisors -n 60 -format svg -o d60.svg
//	$ hasse json -family partition -n 3 -label
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gonuts/commander"
	"github.com/lmittmann/tint"
)

func newRoot() *commander.Command {
	return &commander.Command{
		UsageLine: "hasse <command> [options]",
		Short:     "finite lattice toolkit",
		Subcommands: []*commander.Command{
			InfoCmd(),
			DotCmd(),
			JSONCmd(),
		},
	}
}

// setup applies the shared -v and -no-color flags.
func setup() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if noColor {
		color.NoColor = true
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    color.NoColor,
	}))
	slog.SetDefault(logger)

	return logger
}

func main() {
	if err := newRoot().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
