// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// impl_divisors.go - the divisor lattice of n, given by its operations.

package builder

import (
	"github.com/katalvlaran/lattix/source"
)

// Divisors returns the divisors of n in increasing order with join = lcm
// and meet = gcd. The lattice is distributive; its join-irreducibles are
// the prime powers dividing n.
//
// Errors: ErrTooFewElements (n < 1), ErrTooLarge (more divisors than the cap).
// Complexity: O(√n) to enumerate, then O(d²) operation calls in Produce.
func Divisors(n int, opts ...BuilderOption) (source.Source[int], error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodDivisors, n, MinDivisorsN); err != nil {
		return nil, err
	}

	var small, large []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		small = append(small, d)
		if d*d != n {
			large = append(large, n/d)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	if err := validateMax(MethodDivisors, len(small), cfg.maxElements); err != nil {
		return nil, err
	}

	return source.Operations[int]{Carrier: small, Join: lcm, Meet: gcd}, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
