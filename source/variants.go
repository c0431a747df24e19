// SPDX-License-Identifier: MIT
// Package: lattix/source
//
// variants.go - the closed set of lattice sources.
//
//	Covers       explicit upper covers
//	Order        full leq predicate
//	Operations   binary join/meet; a ≤ b ⟺ join(a, b) = b
//	Congruences  partitions ordered by refinement
//	Subalgebras  subsets ordered by inclusion

package source

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lattix/carrier"
	"github.com/katalvlaran/lattix/poset"
)

// Covers is explicit cover data, validated by poset.New.
type Covers[T any] struct {
	Universe []T
	Upper    [][]int
}

// Kind returns "covers".
func (Covers[T]) Kind() string { return "covers" }

// Produce copies the universe and cover rows.
func (c Covers[T]) Produce() (Data[T], error) {
	upper := make([][]int, len(c.Upper))
	for i, row := range c.Upper {
		upper[i] = slices.Clone(row)
	}

	return Data[T]{Universe: slices.Clone(c.Universe), Upper: upper}, nil
}

// Order is a universe with its full order predicate.
type Order[T any] struct {
	Universe []T
	Leq      func(a, b T) bool
}

// Kind returns "order".
func (Order[T]) Kind() string { return "order" }

// Produce evaluates Leq on all n(n-1) ordered pairs.
func (o Order[T]) Produce() (Data[T], error) {
	if o.Leq == nil {
		return Data[T]{}, fmt.Errorf("Order: leq: %w", ErrNilFunc)
	}

	return Data[T]{Universe: slices.Clone(o.Universe), Filters: poset.FiltersOf(o.Universe, o.Leq)}, nil
}

// Operations is a carrier with binary join and meet. The order is defined
// by a ≤ b ⟺ Join(a, b) = b and cross-checked against Meet(a, b) = a.
type Operations[T comparable] struct {
	Carrier []T
	Join    func(a, b T) T
	Meet    func(a, b T) T
}

// Kind returns "operations".
func (Operations[T]) Kind() string { return "operations" }

// Produce evaluates Join and Meet once on every ordered pair.
//
// Errors (ErrInconsistentOperations, with the offending pair):
//   - Join(a, a) ≠ a or Meet(a, a) ≠ a
//   - a result outside the carrier
//   - (Join(a, b) = b) ≠ (Meet(a, b) = a)
func (o Operations[T]) Produce() (Data[T], error) {
	if o.Join == nil || o.Meet == nil {
		return Data[T]{}, fmt.Errorf("Operations: join/meet: %w", ErrNilFunc)
	}
	member := make(map[T]struct{}, len(o.Carrier))
	for _, x := range o.Carrier {
		member[x] = struct{}{}
	}

	filters := make([][]int, len(o.Carrier))
	for i, a := range o.Carrier {
		row := []int{}
		for j, b := range o.Carrier {
			jn, mt := o.Join(a, b), o.Meet(a, b)
			if _, ok := member[jn]; !ok {
				return Data[T]{}, fmt.Errorf("Operations: join(%v, %v) = %v outside the carrier: %w", a, b, jn, ErrInconsistentOperations)
			}
			if _, ok := member[mt]; !ok {
				return Data[T]{}, fmt.Errorf("Operations: meet(%v, %v) = %v outside the carrier: %w", a, b, mt, ErrInconsistentOperations)
			}
			if i == j {
				if jn != a || mt != a {
					return Data[T]{}, fmt.Errorf("Operations: not idempotent at %v (join %v, meet %v): %w", a, jn, mt, ErrInconsistentOperations)
				}
				continue
			}
			byJoin, byMeet := jn == b, mt == a
			if byJoin != byMeet {
				return Data[T]{}, fmt.Errorf("Operations: join(%v, %v) = %v but meet(%v, %v) = %v: %w", a, b, jn, a, b, mt, ErrInconsistentOperations)
			}
			if byJoin {
				row = append(row, j)
			}
		}
		filters[i] = row
	}

	return Data[T]{Universe: slices.Clone(o.Carrier), Filters: filters}, nil
}

// Congruences is an enumeration of congruences, ordered by refinement.
// A nil Refines uses carrier.Partition.Refines.
type Congruences struct {
	Partitions []carrier.Partition
	Refines    func(a, b carrier.Partition) bool
}

// Kind returns "congruences".
func (Congruences) Kind() string { return "congruences" }

// Produce evaluates the refinement predicate on all ordered pairs.
func (c Congruences) Produce() (Data[carrier.Partition], error) {
	refines := c.Refines
	if refines == nil {
		refines = carrier.Partition.Refines
	}

	return Data[carrier.Partition]{
		Universe: slices.Clone(c.Partitions),
		Filters:  poset.FiltersOf(c.Partitions, refines),
	}, nil
}

// Subalgebras is an enumeration of subalgebras, ordered by inclusion.
// A nil Includes uses carrier.Subset.SubsetOf.
type Subalgebras struct {
	Subsets  []carrier.Subset
	Includes func(a, b carrier.Subset) bool
}

// Kind returns "subalgebras".
func (Subalgebras) Kind() string { return "subalgebras" }

// Produce evaluates the inclusion predicate on all ordered pairs.
func (s Subalgebras) Produce() (Data[carrier.Subset], error) {
	includes := s.Includes
	if includes == nil {
		includes = carrier.Subset.SubsetOf
	}

	return Data[carrier.Subset]{
		Universe: slices.Clone(s.Subsets),
		Filters:  poset.FiltersOf(s.Subsets, includes),
	}, nil
}
