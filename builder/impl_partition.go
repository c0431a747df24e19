// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// impl_partition.go - the partition lattice Π_n and its type labeling.
//
// Π_n is the congruence lattice of the n-element set with no operations.
// Every prime quotient of such an algebra has type 1, so SetTypes labels
// each cover edge label.TypeUnary.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattix/carrier"
	"github.com/katalvlaran/lattix/label"
	"github.com/katalvlaran/lattix/source"
)

// PartitionLattice returns the partitions of {0, ..., n-1} ordered by
// refinement, discrete partition at the bottom. It has Bell(n) elements.
//
// Errors: ErrTooFewElements (n < 1), ErrTooLarge (Bell(n) above the cap, or
// n > carrier.MaxPartitionSize).
func PartitionLattice(n int, opts ...BuilderOption) (source.Source[carrier.Partition], error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodPartitionLattice, n, MinPartitionSet); err != nil {
		return nil, err
	}
	if n > carrier.MaxPartitionSize {
		return nil, builderErrorf(MethodPartitionLattice, "n=%d > %d: %w", n, carrier.MaxPartitionSize, ErrTooLarge)
	}
	if err := validateMax(MethodPartitionLattice, Bell(n), cfg.maxElements); err != nil {
		return nil, err
	}

	parts, err := carrier.Partitions(n)
	if err != nil {
		return nil, builderErrorf(MethodPartitionLattice, "%w", err)
	}

	return source.Congruences{Partitions: parts}, nil
}

// Bell returns the number of partitions of an n-element set, computed with
// the Bell triangle. Bell(0) = 1.
func Bell(n int) int {
	row := []int{1}
	for i := 0; i < n; i++ {
		next := make([]int, len(row)+1)
		next[0] = row[len(row)-1]
		for j, v := range row {
			next[j+1] = next[j] + v
		}
		row = next
	}

	return row[0]
}

// Set is an n-element algebra with no operations.
type Set struct {
	N int
}

// SetTypes is a label.Func for partition lattices of a Set: a cover
// lower ≺ upper merges exactly two blocks and has type 1.
// Any other pair is reported as label.ErrUnclassified.
func SetTypes(lower, upper carrier.Partition, algebra Set) (label.Type, error) {
	if lower.Size() != algebra.N || upper.Size() != algebra.N {
		return 0, fmt.Errorf("%w: partitions of %d and %d elements, set has %d",
			label.ErrUnclassified, lower.Size(), upper.Size(), algebra.N)
	}
	if !lower.Refines(upper) || lower.NumBlocks() != upper.NumBlocks()+1 {
		return 0, fmt.Errorf("%w: %s ≺ %s is not a prime quotient", label.ErrUnclassified, lower, upper)
	}

	return label.TypeUnary, nil
}
