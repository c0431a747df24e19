// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// lattice.go - join, meet and bounds over an immutable poset.
//
// Algorithm (join; meet is the dual over down-sets):
//  1. U = ↑a ∩ ↑b (bitset intersection of two closure rows).
//  2. c = member of U earliest in the linear extension.
//  3. c is the join iff U ⊆ ↑c; otherwise the minimal members of U are
//     reported in a *NotALatticeError.
//
// Step 2 picks the only possible candidate: a least element of U precedes
// every other member in any linear extension.

package lattice

import (
	"slices"

	"github.com/katalvlaran/lattix/export"
	"github.com/katalvlaran/lattix/lazy"
	"github.com/katalvlaran/lattix/poset"
)

// Operation names used in errors and metric labels.
const (
	opJoin = "join"
	opMeet = "meet"
)

// Lattice answers lattice queries over a poset. The zero value is not usable;
// construct with New. All methods are safe for concurrent use.
type Lattice[T any] struct {
	p       *poset.Poset[T]
	bottom  int
	top     int
	bounded bool

	atoms     lazy.Cell[[]int]
	coatoms   lazy.Cell[[]int]
	joinIrr   lazy.Cell[[]int]
	meetIrr   lazy.Cell[[]int]
	tables    lazy.Cell[opTables]
	graphData lazy.Cell[export.GraphData]
}

// New wraps p. It never fails: boundedness is recorded and checked per
// query, and the lattice property itself is verified lazily by Join/Meet
// (or in full by IsLattice).
func New[T any](p *poset.Poset[T]) *Lattice[T] {
	l := &Lattice[T]{p: p, bottom: -1, top: -1}
	b, okB := p.Bottom()
	t, okT := p.Top()
	if okB && okT {
		l.bottom, l.top, l.bounded = b, t, true
	}

	return l
}

// Poset returns the underlying ordered set.
func (l *Lattice[T]) Poset() *poset.Poset[T] {
	return l.p
}

// Len returns the number of elements.
func (l *Lattice[T]) Len() int {
	return l.p.Len()
}

// Bounded reports whether a unique bottom and top exist.
func (l *Lattice[T]) Bounded() bool {
	return l.bounded
}

// Bottom returns the least element or ErrUnbounded.
func (l *Lattice[T]) Bottom() (int, error) {
	if !l.bounded {
		return -1, unbounded("Bottom")
	}

	return l.bottom, nil
}

// Top returns the greatest element or ErrUnbounded.
func (l *Lattice[T]) Top() (int, error) {
	if !l.bounded {
		return -1, unbounded("Top")
	}

	return l.top, nil
}

// Leq reports a ≤ b. It is valid on unbounded posets as well.
func (l *Lattice[T]) Leq(a, b int) (bool, error) {
	return l.p.Leq(a, b)
}

// Element returns the value at index i.
func (l *Lattice[T]) Element(i int) (T, error) {
	return l.p.Element(i)
}

// Index returns the index of v.
func (l *Lattice[T]) Index(v T) (int, error) {
	return l.p.Index(v)
}

// Elements maps indices to values. Indices must be valid.
func (l *Lattice[T]) Elements(idx []int) []T {
	return l.p.Store().Pick(idx)
}

// Join returns the least upper bound of a and b.
//
// Errors:
//   - ErrUnbounded              no unique bottom/top
//   - core.ErrIndexOutOfRange   invalid a or b
//   - *NotALatticeError         several minimal upper bounds
func (l *Lattice[T]) Join(a, b int) (int, error) {
	if !l.bounded {
		return -1, unbounded("Join")
	}
	ub, err := l.p.UpperBounds(a, b)
	if err != nil {
		return -1, err
	}
	if c, ok := l.p.LeastIn(ub); ok {
		return c, nil
	}
	notALatticeTotal.WithLabelValues(opJoin).Inc()

	return -1, &NotALatticeError{Op: opJoin, A: a, B: b, Bounds: l.p.MinimalIn(ub)}
}

// Meet returns the greatest lower bound of a and b. Errors mirror Join.
func (l *Lattice[T]) Meet(a, b int) (int, error) {
	if !l.bounded {
		return -1, unbounded("Meet")
	}
	lb, err := l.p.LowerBounds(a, b)
	if err != nil {
		return -1, err
	}
	if c, ok := l.p.GreatestIn(lb); ok {
		return c, nil
	}
	notALatticeTotal.WithLabelValues(opMeet).Inc()

	return -1, &NotALatticeError{Op: opMeet, A: a, B: b, Bounds: l.p.MaximalIn(lb)}
}

// JoinAll folds Join over xs. The empty join is bottom.
func (l *Lattice[T]) JoinAll(xs ...int) (int, error) {
	return l.fold(xs, l.bottom, l.Join)
}

// MeetAll folds Meet over xs. The empty meet is top.
func (l *Lattice[T]) MeetAll(xs ...int) (int, error) {
	return l.fold(xs, l.top, l.Meet)
}

// fold applies op left to right, starting from unit.
func (l *Lattice[T]) fold(xs []int, unit int, op func(a, b int) (int, error)) (int, error) {
	if !l.bounded {
		return -1, unbounded("fold")
	}
	acc := unit
	for _, x := range xs {
		var err error
		if acc, err = op(acc, x); err != nil {
			return -1, err
		}
	}

	return acc, nil
}

// JoinElements is Join on values.
func (l *Lattice[T]) JoinElements(x, y T) (T, error) {
	return l.onValues(x, y, l.Join)
}

// MeetElements is Meet on values.
func (l *Lattice[T]) MeetElements(x, y T) (T, error) {
	return l.onValues(x, y, l.Meet)
}

// onValues resolves x and y, applies op and maps the result back.
func (l *Lattice[T]) onValues(x, y T, op func(a, b int) (int, error)) (T, error) {
	var zero T
	a, err := l.p.Index(x)
	if err != nil {
		return zero, err
	}
	b, err := l.p.Index(y)
	if err != nil {
		return zero, err
	}
	c, err := op(a, b)
	if err != nil {
		return zero, err
	}

	return l.p.Element(c)
}

// Atoms returns the upper covers of bottom, ascending.
func (l *Lattice[T]) Atoms() ([]int, error) {
	if !l.bounded {
		return nil, unbounded("Atoms")
	}

	return slices.Clone(l.atoms.Get(func() []int {
		up, _ := l.p.UpperCovers(l.bottom)
		return up
	})), nil
}

// Coatoms returns the lower covers of top, ascending.
func (l *Lattice[T]) Coatoms() ([]int, error) {
	if !l.bounded {
		return nil, unbounded("Coatoms")
	}

	return slices.Clone(l.coatoms.Get(func() []int {
		low, _ := l.p.LowerCovers(l.top)
		return low
	})), nil
}

// JoinIrreducibles returns the elements with exactly one lower cover,
// ascending. Bottom has none and is therefore excluded.
func (l *Lattice[T]) JoinIrreducibles() ([]int, error) {
	if !l.bounded {
		return nil, unbounded("JoinIrreducibles")
	}

	return slices.Clone(l.joinIrr.Get(func() []int {
		return l.singleCover(l.p.LowerCovers)
	})), nil
}

// MeetIrreducibles returns the elements with exactly one upper cover,
// ascending. Top is excluded.
func (l *Lattice[T]) MeetIrreducibles() ([]int, error) {
	if !l.bounded {
		return nil, unbounded("MeetIrreducibles")
	}

	return slices.Clone(l.meetIrr.Get(func() []int {
		return l.singleCover(l.p.UpperCovers)
	})), nil
}

// singleCover lists indices whose covers(i) has length one.
func (l *Lattice[T]) singleCover(covers func(int) ([]int, error)) []int {
	out := []int{}
	for i := 0; i < l.p.Len(); i++ {
		if c, _ := covers(i); len(c) == 1 {
			out = append(out, i)
		}
	}

	return out
}

// GraphData exports the Hasse diagram without labels. The snapshot is
// computed once; each call returns an independent copy.
func (l *Lattice[T]) GraphData() export.GraphData {
	return l.graphData.Get(func() export.GraphData {
		return export.ToGraphData(l.p)
	}).Clone()
}

// check validates indices through the poset store.
func (l *Lattice[T]) check(xs ...int) error {
	for _, x := range xs {
		if err := l.p.Store().CheckIndex(x); err != nil {
			return err
		}
	}

	return nil
}
