// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// impl_boolean.go - the Boolean lattice 2^k as subsets under inclusion.

package builder

import (
	"github.com/katalvlaran/lattix/carrier"
	"github.com/katalvlaran/lattix/source"
)

// Boolean returns the subsets of {0, ..., k-1} ordered by inclusion.
// Its atoms are the singletons and it has 2^k elements.
//
// Errors: ErrTooFewElements (k < 0), ErrTooLarge (2^k above the cap, or
// k > carrier.MaxPowerSetSize).
func Boolean(k int, opts ...BuilderOption) (source.Source[carrier.Subset], error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodBoolean, k, MinBooleanRank); err != nil {
		return nil, err
	}
	if k > carrier.MaxPowerSetSize {
		return nil, builderErrorf(MethodBoolean, "k=%d > %d: %w", k, carrier.MaxPowerSetSize, ErrTooLarge)
	}
	if err := validateMax(MethodBoolean, 1<<k, cfg.maxElements); err != nil {
		return nil, err
	}

	subsets, err := carrier.PowerSet(k)
	if err != nil {
		return nil, builderErrorf(MethodBoolean, "%w", err)
	}

	return source.Subalgebras{Subsets: subsets}, nil
}
