// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// api.go - public entry points for ready-made lattice families.
//
// Every family returns a source.Source describing the lattice, so callers
// choose how to build it (source.Build with their own poset options, or
// Build below). Size parameters are validated up front:
//
//	Chain(n)             0 < 1 < ... < n-1, names from the ID scheme
//	Antichain(n)         M_n: n pairwise incomparable atoms between 0 and 1
//	Diamond()            M_3
//	Pentagon()           N_5
//	Bowtie()             bounded, but join(a, b) has two minimal upper bounds
//	Boolean(k)           subsets of {0..k-1} under inclusion
//	Divisors(n)          divisors of n under lcm/gcd
//	PartitionLattice(n)  partitions of {0..n-1} under refinement
//
// Errors: ErrTooFewElements, ErrTooLarge, ErrOptionViolation, always
// prefixed with the Method* name.

package builder

import (
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/source"
)

// Build builds the lattice of a family, passing a family error through.
// It composes with the constructors directly:
//
//	l, err := builder.Build(builder.Divisors(60))
func Build[T any](src source.Source[T], err error) (*lattice.Lattice[T], error) {
	if err != nil {
		return nil, err
	}

	return source.Build(src)
}
