// SPDX-License-Identifier: MIT
// Package: lattix/poset
//
// order.go - order queries on top of the cover relation.
//
// Strategy:
//   - Len() <= closure threshold: the full reflexive-transitive closure is
//     computed once (matrix.Closure) and its transpose on first downward query.
//   - Otherwise: each principal filter ↑a / ideal ↓a is computed by BFS on
//     first use and memoized per element (lazy.Memo, singleflight-deduplicated).
//
// Both strategies return the same rows; only memory/time trade-offs differ.
// Rows handed out internally are shared and MUST NOT be mutated; exported
// set-valued results are always fresh copies.

package poset

import (
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lattix/bfs"
	"github.com/katalvlaran/lattix/matrix"
)

// ClosureMode reports the strategy used for order queries.
func (p *Poset[T]) ClosureMode() ClosureMode {
	if p.Len() <= p.opts.closureThreshold {
		return ModeMatrix
	}

	return ModeOnDemand
}

// upMatrix returns the cached closure matrix (row i = ↑i).
func (p *Poset[T]) upMatrix() *matrix.BitMatrix {
	return p.upClosure.Get(func() *matrix.BitMatrix {
		// Covers were validated at construction; Closure cannot fail here.
		m, _ := matrix.Closure(p.upper)
		closureBuildsTotal.WithLabelValues(ModeMatrix.String()).Inc()
		p.opts.logger.Debug("closure matrix built", "elements", p.Len(), "pairs", m.Ones())

		return m
	})
}

// downMatrix returns the cached transposed closure (row i = ↓i).
func (p *Poset[T]) downMatrix() *matrix.BitMatrix {
	return p.downClosure.Get(func() *matrix.BitMatrix {
		return p.upMatrix().Transpose()
	})
}

// upRow returns ↑i as a shared, read-only bitset. i must be valid.
func (p *Poset[T]) upRow(i int) *bitset.BitSet {
	if p.ClosureMode() == ModeMatrix {
		return p.upMatrix().Row(i)
	}

	return p.upRows.Get(i, func() *bitset.BitSet {
		b, _ := bfs.Reach(p.upper, i) // i validated by caller
		closureBuildsTotal.WithLabelValues(ModeOnDemand.String()).Inc()

		return b
	})
}

// downRow returns ↓i as a shared, read-only bitset. i must be valid.
func (p *Poset[T]) downRow(i int) *bitset.BitSet {
	if p.ClosureMode() == ModeMatrix {
		return p.downMatrix().Row(i)
	}

	return p.downRows.Get(i, func() *bitset.BitSet {
		b, _ := bfs.Reach(p.lower, i)
		closureBuildsTotal.WithLabelValues(ModeOnDemand.String()).Inc()

		return b
	})
}

// Leq reports a ≤ b: b is reachable from a by zero or more upward cover edges.
// Returns core.ErrIndexOutOfRange for invalid indices.
func (p *Poset[T]) Leq(a, b int) (bool, error) {
	if err := p.check(a, b); err != nil {
		return false, err
	}

	return p.upRow(a).Test(uint(b)), nil
}

// Less reports a < b.
func (p *Poset[T]) Less(a, b int) (bool, error) {
	le, err := p.Leq(a, b)

	return le && a != b, err
}

// Comparable reports a ≤ b or b ≤ a.
func (p *Poset[T]) Comparable(a, b int) (bool, error) {
	if err := p.check(a, b); err != nil {
		return false, err
	}

	return p.upRow(a).Test(uint(b)) || p.upRow(b).Test(uint(a)), nil
}

// UpSet returns the principal filter ↑i in ascending order.
func (p *Poset[T]) UpSet(i int) ([]int, error) {
	if err := p.store.CheckIndex(i); err != nil {
		return nil, err
	}

	return matrix.Members(p.upRow(i)), nil
}

// DownSet returns the principal ideal ↓i in ascending order.
func (p *Poset[T]) DownSet(i int) ([]int, error) {
	if err := p.store.CheckIndex(i); err != nil {
		return nil, err
	}

	return matrix.Members(p.downRow(i)), nil
}

// CoverDistance returns the number of cover steps on a shortest upward
// path from a to b: 0 when a = b, -1 when a ≰ b.
// Complexity: O(n + e).
func (p *Poset[T]) CoverDistance(a, b int) (int, error) {
	if err := p.check(a, b); err != nil {
		return -1, err
	}
	res, err := bfs.Walk(p.upper, a)
	if err != nil {
		return -1, err
	}

	return res.Depth[b], nil
}

// Interval returns [a, b] = {c : a ≤ c ≤ b}, empty when a ≰ b.
func (p *Poset[T]) Interval(a, b int) ([]int, error) {
	if err := p.check(a, b); err != nil {
		return nil, err
	}

	return matrix.Members(p.upRow(a).Intersection(p.downRow(b))), nil
}

// UpperBounds returns the common upper bounds of xs as a fresh bitset.
// With no arguments every element is a (vacuous) upper bound.
func (p *Poset[T]) UpperBounds(xs ...int) (*bitset.BitSet, error) {
	return p.bounds(xs, p.upRow)
}

// LowerBounds returns the common lower bounds of xs as a fresh bitset.
func (p *Poset[T]) LowerBounds(xs ...int) (*bitset.BitSet, error) {
	return p.bounds(xs, p.downRow)
}

// bounds intersects the rows of xs.
func (p *Poset[T]) bounds(xs []int, row func(int) *bitset.BitSet) (*bitset.BitSet, error) {
	n := uint(p.Len())
	if len(xs) == 0 {
		return bitset.New(n).Complement(), nil
	}
	for _, x := range xs {
		if err := p.store.CheckIndex(x); err != nil {
			return nil, err
		}
	}

	out := row(xs[0]).Clone()
	for _, x := range xs[1:] {
		out.InPlaceIntersection(row(x))
	}

	return out, nil
}

// MinimalIn returns the minimal members of set, ascending.
// A member m is minimal when ↓m meets set only in m.
func (p *Poset[T]) MinimalIn(set *bitset.BitSet) []int {
	return p.extremalIn(set, p.downRow)
}

// MaximalIn returns the maximal members of set, ascending.
func (p *Poset[T]) MaximalIn(set *bitset.BitSet) []int {
	return p.extremalIn(set, p.upRow)
}

// extremalIn keeps members whose row meets set only in themselves.
func (p *Poset[T]) extremalIn(set *bitset.BitSet, row func(int) *bitset.BitSet) []int {
	out := []int{}
	n := uint(p.Len())
	for m, ok := set.NextSet(0); ok && m < n; m, ok = set.NextSet(m + 1) {
		if row(int(m)).IntersectionCardinality(set) == 1 {
			out = append(out, int(m))
		}
	}

	return out
}

// LeastIn returns the least member of set, if set has one.
// The candidate is the member earliest in the linear extension; it is the
// least element iff every member lies in its filter.
// Complexity: O(|set| + n/64).
func (p *Poset[T]) LeastIn(set *bitset.BitSet) (int, bool) {
	c := p.pickByRank(set, func(r, best int) bool { return r < best })
	if c < 0 || !p.upRow(c).IsSuperSet(set) {
		return -1, false
	}

	return c, true
}

// GreatestIn returns the greatest member of set, if set has one.
func (p *Poset[T]) GreatestIn(set *bitset.BitSet) (int, bool) {
	c := p.pickByRank(set, func(r, best int) bool { return r > best })
	if c < 0 || !p.downRow(c).IsSuperSet(set) {
		return -1, false
	}

	return c, true
}

// pickByRank returns the member of set preferred by better, or -1 if empty.
func (p *Poset[T]) pickByRank(set *bitset.BitSet, better func(r, best int) bool) int {
	pick := -1
	n := uint(p.Len())
	for m, ok := set.NextSet(0); ok && m < n; m, ok = set.NextSet(m + 1) {
		if pick < 0 || better(p.rank[m], p.rank[pick]) {
			pick = int(m)
		}
	}

	return pick
}

// Rank returns the position of i in TopologicalOrder.
func (p *Poset[T]) Rank(i int) (int, error) {
	if err := p.store.CheckIndex(i); err != nil {
		return -1, err
	}

	return p.rank[i], nil
}

// Sorted returns a copy of xs ordered by the linear extension.
func (p *Poset[T]) Sorted(xs []int) []int {
	out := slices.Clone(xs)
	slices.SortFunc(out, func(a, b int) int { return p.rank[a] - p.rank[b] })

	return out
}
