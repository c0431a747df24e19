// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the lattice families,
// keeping error prefixes and size limits consistent across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodAntichain is the canonical name for the Antichain constructor.
	MethodAntichain = "Antichain"
	// MethodBoolean is the canonical name for the Boolean constructor.
	MethodBoolean = "Boolean"
	// MethodDivisors is the canonical name for the Divisors constructor.
	MethodDivisors = "Divisors"
	// MethodPartitionLattice is the canonical name for the PartitionLattice constructor.
	MethodPartitionLattice = "PartitionLattice"
)

//-----------------------------------------------------------------------------
// Element Name Defaults
//-----------------------------------------------------------------------------

// BottomID and TopID name the adjoined bounds of Antichain, Diamond,
// Pentagon and Bowtie.
const (
	BottomID = "0"
	TopID    = "1"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

const (
	// MinChainLength is the smallest chain; the empty chain is allowed.
	MinChainLength = 0
	// MinAntichainWidth is the smallest number of atoms in M_n.
	MinAntichainWidth = 1
	// MinBooleanRank is the rank of the one-element Boolean lattice.
	MinBooleanRank = 0
	// MinDivisorsN is the smallest n whose divisors form a lattice.
	MinDivisorsN = 1
	// MinPartitionSet is the size of the smallest partitioned set.
	MinPartitionSet = 1
)

// DefaultMaxElements caps the size of any generated lattice.
const DefaultMaxElements = 4096
