// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// properties.go - whole-lattice checks built on cached operation tables.
//
// IsLattice evaluates every unordered pair once and keeps the results as
// n×n join/meet tables; distributivity, modularity and complements then
// run on plain slice lookups.

package lattice

import (
	"fmt"
)

// opTables caches join[a][b] and meet[a][b], or the first failure.
type opTables struct {
	join [][]int
	meet [][]int
	err  error
}

// operationTables computes (once) the full join/meet tables.
func (l *Lattice[T]) operationTables() opTables {
	return l.tables.Get(func() opTables {
		if !l.bounded {
			return opTables{err: unbounded("IsLattice")}
		}
		n := l.p.Len()
		t := opTables{join: square(n), meet: square(n)}
		for a := 0; a < n; a++ {
			for b := a; b < n; b++ {
				j, err := l.Join(a, b)
				if err != nil {
					return opTables{err: err}
				}
				m, err := l.Meet(a, b)
				if err != nil {
					return opTables{err: err}
				}
				t.join[a][b], t.join[b][a] = j, j
				t.meet[a][b], t.meet[b][a] = m, m
			}
		}

		return t
	})
}

// square allocates an n×n table backed by one slice.
func square(n int) [][]int {
	cells := make([]int, n*n)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = cells[i*n : (i+1)*n]
	}

	return rows
}

// IsLattice returns nil when every pair has a join and a meet. Otherwise it
// returns ErrUnbounded or the first *NotALatticeError in index order.
// Complexity: O(n²·n/64), computed once.
func (l *Lattice[T]) IsLattice() error {
	return l.operationTables().err
}

// IsDistributive reports a ∧ (b ∨ c) = (a ∧ b) ∨ (a ∧ c) for all triples.
// Errors are those of IsLattice.
func (l *Lattice[T]) IsDistributive() (bool, error) {
	t := l.operationTables()
	if t.err != nil {
		return false, t.err
	}
	n := l.p.Len()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := b + 1; c < n; c++ {
				if t.meet[a][t.join[b][c]] != t.join[t.meet[a][b]][t.meet[a][c]] {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// IsModular reports a ≤ c ⟹ a ∨ (b ∧ c) = (a ∨ b) ∧ c for all triples.
// Errors are those of IsLattice.
func (l *Lattice[T]) IsModular() (bool, error) {
	t := l.operationTables()
	if t.err != nil {
		return false, t.err
	}
	n := l.p.Len()
	for a := 0; a < n; a++ {
		up, _ := l.p.UpSet(a)
		for _, c := range up {
			for b := 0; b < n; b++ {
				if t.join[a][t.meet[b][c]] != t.meet[t.join[a][b]][c] {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// Complements returns every c with a ∨ c = top and a ∧ c = bottom,
// ascending. Errors are those of IsLattice plus core.ErrIndexOutOfRange.
func (l *Lattice[T]) Complements(a int) ([]int, error) {
	if err := l.check(a); err != nil {
		return nil, err
	}
	t := l.operationTables()
	if t.err != nil {
		return nil, t.err
	}

	out := []int{}
	for c := 0; c < l.p.Len(); c++ {
		if t.join[a][c] == l.top && t.meet[a][c] == l.bottom {
			out = append(out, c)
		}
	}

	return out, nil
}

// IsComplemented reports whether every element has at least one complement.
func (l *Lattice[T]) IsComplemented() (bool, error) {
	for a := 0; a < l.p.Len(); a++ {
		cs, err := l.Complements(a)
		if err != nil {
			return false, fmt.Errorf("IsComplemented: %w", err)
		}
		if len(cs) == 0 {
			return false, nil
		}
	}

	return true, nil
}
