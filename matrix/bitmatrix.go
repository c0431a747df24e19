// SPDX-License-Identifier: MIT
// Package: matrix
//
// bitmatrix.go - square boolean matrix stored as one bitset per row.
//
// Contract:
//   - Rows are *bitset.BitSet of width n; row i holds the columns j with M[i][j] = 1.
//   - Row(i) exposes the live row for read-only use by callers that need
//     word-level set algebra (intersection, superset tests). Callers MUST NOT
//     mutate a returned row.
//   - Out-of-range reads return false; out-of-range writes return ErrOutOfRange.

package matrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitMatrix is an n×n boolean matrix.
type BitMatrix struct {
	n    int
	rows []*bitset.BitSet
}

// NewBitMatrix allocates an all-zero n×n matrix. n == 0 is allowed.
// Returns ErrBadShape for negative n.
// Complexity: O(n²/64) words.
func NewBitMatrix(n int) (*BitMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBitMatrix: n=%d: %w", n, ErrBadShape)
	}

	m := &BitMatrix{n: n, rows: make([]*bitset.BitSet, n)}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(n))
	}

	return m, nil
}

// Size returns n.
func (m *BitMatrix) Size() int {
	return m.n
}

// Set marks M[i][j] = 1.
func (m *BitMatrix) Set(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, m.n, m.n, ErrOutOfRange)
	}
	m.rows[i].Set(uint(j))

	return nil
}

// Has reports M[i][j]; out-of-range pairs are false.
func (m *BitMatrix) Has(i, j int) bool {
	if i < 0 || i >= m.n || j < 0 {
		return false
	}

	return m.rows[i].Test(uint(j))
}

// Row returns row i (read-only) or nil when i is out of range.
func (m *BitMatrix) Row(i int) *bitset.BitSet {
	if i < 0 || i >= m.n {
		return nil
	}

	return m.rows[i]
}

// Transpose returns a new matrix with M'[j][i] = M[i][j].
// Complexity: O(n + ones).
func (m *BitMatrix) Transpose() *BitMatrix {
	t, _ := NewBitMatrix(m.n) // n already validated
	for i, row := range m.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			t.rows[j].Set(uint(i))
		}
	}

	return t
}

// Equal reports whether both matrices have the same size and entries.
func (m *BitMatrix) Equal(o *BitMatrix) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// Ones returns the number of set entries.
func (m *BitMatrix) Ones() int {
	total := 0
	for _, row := range m.rows {
		total += int(row.Count())
	}

	return total
}

// Members lists the set positions of b in ascending order.
func Members(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for j, ok := b.NextSet(0); ok; j, ok = b.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}
