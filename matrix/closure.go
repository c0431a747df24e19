// SPDX-License-Identifier: MIT
// Package: matrix
//
// closure.go - reflexive-transitive closure of a directed graph given as
// index adjacency lists (Warshall's algorithm on bit rows).
//
// Contract:
//   - adj[i] lists the direct successors of i; every entry must be in [0, len(adj)).
//   - The result R satisfies R[i][j] = 1 iff j is reachable from i by zero or more edges.
//
// Determinism:
//   - Loop order is fixed: k outer, i inner.

package matrix

import "fmt"

// Operation name constant for unified error wrapping.
const opClosure = "Closure"

// Closure computes the reflexive-transitive closure of adj.
//
// Implementation:
//   - Stage 1: Seed R with the diagonal and the direct edges (validating indices).
//   - Stage 2: For every intermediate k and every row i that reaches k,
//     OR row k into row i. Word-parallel union keeps the inner loop at n/64.
//
// Complexity: Time O(n³/64) worst case, Space O(n²/64) words.
func Closure(adj [][]int) (*BitMatrix, error) {
	n := len(adj)
	r, err := NewBitMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err)
	}

	// Stage 1: reflexive seed plus direct successors.
	for i, succ := range adj {
		r.rows[i].Set(uint(i))
		for _, j := range succ {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%s: edge %d->%d with n=%d: %w", opClosure, i, j, n, ErrOutOfRange)
			}
			r.rows[i].Set(uint(j))
		}
	}

	// Stage 2: Warshall relaxation, rows as bitsets.
	var k, i int
	for k = 0; k < n; k++ {
		rowK := r.rows[k]
		for i = 0; i < n; i++ {
			if i == k || !r.rows[i].Test(uint(k)) {
				continue // i does not reach k; nothing to propagate
			}
			r.rows[i].InPlaceUnion(rowK)
		}
	}

	return r, nil
}
