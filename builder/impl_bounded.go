// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// impl_bounded.go - small bounded posets built around BottomID and TopID:
// the lattices M_n and N_5, and the bowtie, the smallest bounded poset
// that is not a lattice.

package builder

import (
	"slices"

	"github.com/katalvlaran/lattix/source"
)

// Antichain returns M_n: BottomID, n atoms named by the atom scheme, TopID.
// Antichain(1) is the 3-chain; Antichain(3) is Diamond.
//
// Errors: ErrTooFewElements (n < 1), ErrTooLarge, ErrOptionViolation
// (duplicate atom names, or names equal to BottomID or TopID).
func Antichain(n int, opts ...BuilderOption) (source.Source[string], error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodAntichain, n, MinAntichainWidth); err != nil {
		return nil, err
	}
	if err := validateMax(MethodAntichain, n+2, cfg.maxElements); err != nil {
		return nil, err
	}
	atoms, err := names(MethodAntichain, cfg.atomFn, n)
	if err != nil {
		return nil, err
	}
	if i := slices.IndexFunc(atoms, isBound); i >= 0 {
		return nil, builderErrorf(MethodAntichain, "atom %d named %q: %w", i, atoms[i], ErrOptionViolation)
	}

	// 0 | atoms 1..n | top n+1
	universe := make([]string, 0, n+2)
	universe = append(universe, BottomID)
	universe = append(universe, atoms...)
	universe = append(universe, TopID)

	upper := make([][]int, n+2)
	upper[0] = make([]int, n)
	for i := 1; i <= n; i++ {
		upper[0][i-1] = i
		upper[i] = []int{n + 1}
	}

	return source.Covers[string]{Universe: universe, Upper: upper}, nil
}

func isBound(id string) bool {
	return id == BottomID || id == TopID
}

// Diamond returns M_3: modular, not distributive.
func Diamond() source.Source[string] {
	return source.Covers[string]{
		Universe: []string{BottomID, "a", "b", "c", TopID},
		Upper:    [][]int{{1, 2, 3}, {4}, {4}, {4}, {}},
	}
}

// Pentagon returns N_5 with 0 < a < c < 1 and 0 < b < 1: not modular.
func Pentagon() source.Source[string] {
	return source.Covers[string]{
		Universe: []string{BottomID, "a", "b", "c", TopID},
		Upper:    [][]int{{1, 2}, {3}, {4}, {4}, {}},
	}
}

// Bowtie returns the bounded poset 0 < a, b < c, d < 1. Both c and d are
// minimal upper bounds of a and b, so it is not a lattice.
func Bowtie() source.Source[string] {
	return source.Covers[string]{
		Universe: []string{BottomID, "a", "b", "c", "d", TopID},
		Upper:    [][]int{{1, 2}, {3, 4}, {3, 4}, {5}, {5}, {}},
	}
}
