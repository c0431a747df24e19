// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// impl_chain.go - the n-element chain.

package builder

import (
	"github.com/katalvlaran/lattix/source"
)

// Chain returns the chain e0 < e1 < ... < e(n-1), named by the ID scheme.
// Chain(0) is the empty poset, which is not a bounded lattice.
//
// Errors: ErrTooFewElements (n < 0), ErrTooLarge, ErrOptionViolation.
// Complexity: O(n).
func Chain(n int, opts ...BuilderOption) (source.Source[string], error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodChain, n, MinChainLength); err != nil {
		return nil, err
	}
	if err := validateMax(MethodChain, n, cfg.maxElements); err != nil {
		return nil, err
	}
	ids, err := names(MethodChain, cfg.idFn, n)
	if err != nil {
		return nil, err
	}

	upper := make([][]int, n)
	for i := 0; i+1 < n; i++ {
		upper[i] = []int{i + 1}
	}

	return source.Covers[string]{Universe: ids, Upper: upper}, nil
}
