// SPDX-License-Identifier: MIT
// Package carrier provides the structures algebra-derived lattices are built
// from: set partitions (congruences) and subsets (subalgebras) of a carrier
// {0, ..., n-1}.
//
// Both types are immutable values with a canonical String form, so they can
// be used directly as poset universes with the default key function.
//
//	Partition  refinement order; Join by union-find, Meet by block intersection
//	Subset     inclusion order; Union, Intersect
//
// Errors:
//
//   - ErrNegativeSize  n < 0
//   - ErrOutOfRange    element outside the carrier
//   - ErrOverlap       element in two blocks
//   - ErrUncovered     element in no block
//   - ErrSizeMismatch  operation on partitions of different carriers
//   - ErrTooLarge      enumeration above MaxPartitionSize / MaxPowerSetSize
package carrier

import "errors"

var (
	ErrNegativeSize = errors.New("carrier: negative size")
	ErrOutOfRange   = errors.New("carrier: element out of range")
	ErrOverlap      = errors.New("carrier: element in more than one block")
	ErrUncovered    = errors.New("carrier: element in no block")
	ErrSizeMismatch = errors.New("carrier: carrier sizes differ")
	ErrTooLarge     = errors.New("carrier: enumeration too large")
)
