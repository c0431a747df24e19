// SPDX-License-Identifier: MIT
// Package: lattix/poset
//
// poset.go - the Ordered Set: universe, cover relation, reverse covers and
// a cached linear extension.
//
// Contract:
//   - Construction validates everything up front; a returned *Poset is
//     immutable and safe for unlimited concurrent readers.
//   - Derived data (closure rows, extremal elements) is computed lazily
//     through lazy.Cell / lazy.Memo and never invalidated.
//   - All indices are zero-based positions in the universe.

package poset

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lattix/core"
	"github.com/katalvlaran/lattix/dfs"
	"github.com/katalvlaran/lattix/lazy"
	"github.com/katalvlaran/lattix/matrix"
)

// Operation names for error context.
const (
	opNew         = "poset.New"
	opFromFilters = "poset.FromFilters"
	opFromLeq     = "poset.FromLeq"
)

// Poset is a finite partially ordered set given by its cover relation.
type Poset[T any] struct {
	store *core.Store[T]
	upper [][]int // upper[i]: sorted indices covering i
	lower [][]int // lower[i]: sorted indices covered by i
	order []int   // linear extension, minimal elements first
	rank  []int   // rank[i]: position of i in order
	opts  options[T]

	upClosure   lazy.Cell[*matrix.BitMatrix]
	downClosure lazy.Cell[*matrix.BitMatrix]
	upRows      lazy.Memo[*bitset.BitSet]
	downRows    lazy.Memo[*bitset.BitSet]
	minimal     lazy.Cell[[]int]
	maximal     lazy.Cell[[]int]
}

// New builds a poset from a universe and its upper-cover lists.
// upper[i] lists the indices that cover universe[i]; missing trailing rows
// mean "no covers". Entries are deduplicated and sorted.
//
// Errors (all wrapped under ErrConstruction):
//   - ErrShape            len(upper) > len(universe)
//   - ErrCoverOutOfRange  cover index outside [0, n)
//   - ErrSelfCover        i listed among its own covers
//   - ErrCycle            closure not antisymmetric (reported with the cycle)
//   - ErrRedundantCover   a cover entry implied by another cover of the same element
//   - core.ErrDuplicateElement, ErrInvalidOption
//
// Complexity: O(n + e) plus one closure pass to reject redundant covers.
func New[T any](universe []T, upper [][]int, opts ...Option[T]) (p *Poset[T], err error) {
	start := time.Now()
	defer func() { observeConstruction(start, err) }()

	o, err := resolveOptions(opNew, opts)
	if err != nil {
		return nil, err
	}

	return build(opNew, universe, upper, o)
}

// resolveOptions applies opts over the defaults.
func resolveOptions[T any](op string, opts []Option[T]) (options[T], error) {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, constructionErr(op, o.err, "options")
	}

	return o, nil
}

// build is the validated construction shared by New and FromFilters.
func build[T any](op string, universe []T, upper [][]int, o options[T]) (*Poset[T], error) {
	// 1) Index the universe.
	store, err := core.NewStore(universe, o.key)
	if err != nil {
		return nil, constructionErr(op, err, "universe")
	}
	n := store.Len()
	if len(upper) > n {
		return nil, constructionErr(op, ErrShape, "%d cover rows for %d elements", len(upper), n)
	}

	// 2) Normalize cover rows and derive the reverse relation.
	up := make([][]int, n)
	for i, row := range upper {
		if up[i], err = normalizeRow(op, i, row, n); err != nil {
			return nil, err
		}
	}
	for i := len(upper); i < n; i++ {
		up[i] = []int{}
	}
	low := reverseCovers(up)

	// 3) Acyclicity via topological sort; the order doubles as a linear extension.
	order, err := dfs.TopologicalSort(up)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, fmt.Errorf("%s: %w: %w: %w", op, ErrConstruction, ErrCycle, err)
		}
		return nil, constructionErr(op, ErrCoverOutOfRange, "%v", err)
	}
	rank := make([]int, n)
	for pos, v := range order {
		rank[v] = pos
	}

	p := &Poset[T]{
		store: store,
		upper: up,
		lower: low,
		order: order,
		rank:  rank,
		opts:  o,
	}

	// 4) Hasse-diagram check: no cover may be reachable through a sibling cover.
	if err = p.checkIrredundant(op); err != nil {
		return nil, err
	}

	o.logger.Debug("poset constructed",
		"elements", n,
		"covers", p.EdgeCount(),
		"closure", p.ClosureMode().String(),
	)

	return p, nil
}

// normalizeRow copies, validates, sorts and deduplicates one cover row.
func normalizeRow(op string, i int, row []int, n int) ([]int, error) {
	out := make([]int, 0, len(row))
	for _, j := range row {
		if j < 0 || j >= n {
			return nil, constructionErr(op, ErrCoverOutOfRange, "cover %d of element %d (n=%d)", j, i, n)
		}
		if j == i {
			return nil, constructionErr(op, ErrSelfCover, "element %d", i)
		}
		out = append(out, j)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// reverseCovers builds sorted lower-cover lists from upper-cover lists.
func reverseCovers(up [][]int) [][]int {
	low := make([][]int, len(up))
	for i := range low {
		low[i] = []int{}
	}
	// Iterating i ascending keeps every low[j] sorted.
	for i, row := range up {
		for _, j := range row {
			low[j] = append(low[j], i)
		}
	}

	return low
}

// checkIrredundant rejects i→j when j is above another cover k of i.
func (p *Poset[T]) checkIrredundant(op string) error {
	for i, row := range p.upper {
		if len(row) < 2 {
			continue
		}
		for _, k := range row {
			reach := p.upRow(k)
			for _, j := range row {
				if j != k && reach.Test(uint(j)) {
					return constructionErr(op, ErrRedundantCover, "%d->%d is implied by %d->%d", i, j, i, k)
				}
			}
		}
	}

	return nil
}

// Len returns the number of elements.
func (p *Poset[T]) Len() int {
	return p.store.Len()
}

// Store exposes the immutable element store.
func (p *Poset[T]) Store() *core.Store[T] {
	return p.store
}

// Element returns the value at index i (core.ErrIndexOutOfRange otherwise).
func (p *Poset[T]) Element(i int) (T, error) {
	return p.store.At(i)
}

// Index returns the index of v (core.ErrElementNotFound otherwise).
func (p *Poset[T]) Index(v T) (int, error) {
	return p.store.IndexOf(v)
}

// Values returns the universe in index order.
func (p *Poset[T]) Values() []T {
	return p.store.Values()
}

// Label returns the display string of element i.
func (p *Poset[T]) Label(i int) string {
	return p.store.Label(i)
}

// UpperCovers returns the sorted indices covering i.
func (p *Poset[T]) UpperCovers(i int) ([]int, error) {
	if err := p.store.CheckIndex(i); err != nil {
		return nil, err
	}

	return slices.Clone(p.upper[i]), nil
}

// LowerCovers returns the sorted indices covered by i.
func (p *Poset[T]) LowerCovers(i int) ([]int, error) {
	if err := p.store.CheckIndex(i); err != nil {
		return nil, err
	}

	return slices.Clone(p.lower[i]), nil
}

// IsCover reports whether b covers a.
func (p *Poset[T]) IsCover(a, b int) (bool, error) {
	if err := p.check(a, b); err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(p.upper[a], b)

	return found, nil
}

// Edges returns every cover pair ordered by (Lower, Upper).
func (p *Poset[T]) Edges() []core.Edge {
	out := make([]core.Edge, 0, p.EdgeCount())
	for i, row := range p.upper {
		for _, j := range row {
			out = append(out, core.Edge{Lower: i, Upper: j})
		}
	}

	return out
}

// EdgeCount returns the size of the cover relation.
func (p *Poset[T]) EdgeCount() int {
	total := 0
	for _, row := range p.upper {
		total += len(row)
	}

	return total
}

// TopologicalOrder returns a linear extension: if a < b then a precedes b.
func (p *Poset[T]) TopologicalOrder() []int {
	return slices.Clone(p.order)
}

// Minimal returns the elements without lower covers, ascending.
func (p *Poset[T]) Minimal() []int {
	return slices.Clone(p.minimal.Get(func() []int {
		return extremal(p.lower)
	}))
}

// Maximal returns the elements without upper covers, ascending.
func (p *Poset[T]) Maximal() []int {
	return slices.Clone(p.maximal.Get(func() []int {
		return extremal(p.upper)
	}))
}

// Bottom returns the least element if the poset has exactly one minimal element.
func (p *Poset[T]) Bottom() (int, bool) {
	m := p.minimal.Get(func() []int { return extremal(p.lower) })
	if len(m) != 1 {
		return -1, false
	}

	return m[0], true
}

// Top returns the greatest element if the poset has exactly one maximal element.
func (p *Poset[T]) Top() (int, bool) {
	m := p.maximal.Get(func() []int { return extremal(p.upper) })
	if len(m) != 1 {
		return -1, false
	}

	return m[0], true
}

// extremal lists indices whose adjacency row is empty.
func extremal(adj [][]int) []int {
	out := []int{}
	for i, row := range adj {
		if len(row) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// check validates a pair of indices.
func (p *Poset[T]) check(a, b int) error {
	if err := p.store.CheckIndex(a); err != nil {
		return err
	}

	return p.store.CheckIndex(b)
}
