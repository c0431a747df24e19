// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/gonuts/flag"

	"github.com/katalvlaran/lattix/builder"
)

// Shared flag values; every subcommand registers them with commonFlags.
var (
	family      string
	size        int
	maxElements int
	closure     int
	verbose     bool
	noColor     bool
	outFile     string
	withLabels  bool
)

// ErrUnknownFamily indicates a -family value outside families.
var ErrUnknownFamily = errors.New("hasse: unknown family")

// families lists the accepted -family values.
const families = "chain, antichain, diamond, pentagon, bowtie, boolean, divisors, partition"

func commonFlags(fs *flag.FlagSet) {
	fs.StringVar(&family, "family", "divisors", "lattice family: "+families)
	fs.IntVar(&size, "n", 12, "family size parameter (ignored by diamond, pentagon, bowtie)")
	fs.IntVar(&maxElements, "max", builder.DefaultMaxElements, "largest lattice to generate")
	fs.IntVar(&closure, "closure", -1, "closure matrix threshold (-1 keeps the default)")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
}

func outputFlags(fs *flag.FlagSet) {
	fs.StringVar(&outFile, "o", "", "output file (default stdout)")
	fs.BoolVar(&withLabels, "label", false, "label cover edges with type codes (partition family only)")
}
