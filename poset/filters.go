// SPDX-License-Identifier: MIT
// Package: lattix/poset
//
// filters.go - alternate factories from principal filters or a leq predicate.
//
// A filter row lists the elements above i (i itself may be omitted). The
// cover relation is recovered as the minimal elements of each strict filter:
//
//	covers(i) = ↑°i \ ⋃{ ↑°k : k ∈ ↑°i }
//
// which is only meaningful for a transitive, antisymmetric family, so both
// properties are verified before the covers are handed to build.

package poset

import (
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lattix/matrix"
)

// FromFilters builds a poset from principal filters: filters[i] lists every
// element ≥ universe[i]. Inclusion of i in its own row is optional and
// duplicate entries are ignored.
//
// Errors (wrapped under ErrConstruction):
//   - ErrShape            len(filters) != len(universe)
//   - ErrCoverOutOfRange  entry outside [0, n)
//   - ErrCycle            two distinct elements in each other's filter
//   - ErrNotTransitive    k ∈ ↑i but ↑k ⊄ ↑i
//
// Complexity: O(n²·n/64) for derivation and verification.
func FromFilters[T any](universe []T, filters [][]int, opts ...Option[T]) (p *Poset[T], err error) {
	start := time.Now()
	defer func() { observeConstruction(start, err) }()

	o, err := resolveOptions(opFromFilters, opts)
	if err != nil {
		return nil, err
	}

	return fromFilters(opFromFilters, universe, filters, o)
}

// FromLeq builds a poset by evaluating leq on all n² ordered pairs and
// deriving covers as FromFilters does. leq(a, a) is not consulted.
// A nil predicate yields ErrNilPredicate.
func FromLeq[T any](universe []T, leq func(a, b T) bool, opts ...Option[T]) (p *Poset[T], err error) {
	start := time.Now()
	defer func() { observeConstruction(start, err) }()

	o, err := resolveOptions(opFromLeq, opts)
	if err != nil {
		return nil, err
	}
	if leq == nil {
		return nil, constructionErr(opFromLeq, ErrNilPredicate, "leq")
	}

	return fromFilters(opFromLeq, universe, FiltersOf(universe, leq), o)
}

// FiltersOf evaluates leq on the n(n-1) ordered pairs of distinct elements
// and returns the strict principal filters: row i lists every j ≠ i with
// leq(universe[i], universe[j]), ascending. leq(a, a) is not consulted.
func FiltersOf[T any](universe []T, leq func(a, b T) bool) [][]int {
	filters := make([][]int, len(universe))
	for i, a := range universe {
		row := []int{}
		for j, b := range universe {
			if i != j && leq(a, b) {
				row = append(row, j)
			}
		}
		filters[i] = row
	}

	return filters
}

// fromFilters validates the filter family and delegates to build.
func fromFilters[T any](op string, universe []T, filters [][]int, o options[T]) (*Poset[T], error) {
	n := len(universe)
	if len(filters) != n {
		return nil, constructionErr(op, ErrShape, "%d filter rows for %d elements", len(filters), n)
	}

	strict, err := strictFilters(op, filters)
	if err != nil {
		return nil, err
	}
	upper, err := deriveCovers(op, strict)
	if err != nil {
		return nil, err
	}

	return build(op, universe, upper, o)
}

// strictFilters converts rows to bitsets without the diagonal.
func strictFilters(op string, filters [][]int) ([]*bitset.BitSet, error) {
	n := len(filters)
	strict := make([]*bitset.BitSet, n)
	for i, row := range filters {
		b := bitset.New(uint(n))
		for _, j := range row {
			if j < 0 || j >= n {
				return nil, constructionErr(op, ErrCoverOutOfRange, "filter entry %d of element %d (n=%d)", j, i, n)
			}
			if j != i {
				b.Set(uint(j))
			}
		}
		strict[i] = b
	}

	return strict, nil
}

// deriveCovers checks antisymmetry and transitivity, then keeps the
// minimal elements of every strict filter.
func deriveCovers(op string, strict []*bitset.BitSet) ([][]int, error) {
	for i, s := range strict {
		for k, ok := s.NextSet(0); ok; k, ok = s.NextSet(k + 1) {
			if strict[k].Test(uint(i)) {
				return nil, constructionErr(op, ErrCycle, "%d and %d are in each other's filter", i, k)
			}
			if !s.IsSuperSet(strict[k]) {
				missing := strict[k].Difference(s)
				j, _ := missing.NextSet(0)
				return nil, constructionErr(op, ErrNotTransitive, "%d ≤ %d ≤ %d but %d is not in the filter of %d", i, k, j, j, i)
			}
		}
	}

	upper := make([][]int, len(strict))
	for i, s := range strict {
		above := bitset.New(uint(len(strict)))
		for k, ok := s.NextSet(0); ok; k, ok = s.NextSet(k + 1) {
			above.InPlaceUnion(strict[k])
		}
		upper[i] = matrix.Members(s.Difference(above))
	}

	return upper, nil
}
