// SPDX-License-Identifier: MIT
// Package matrix offers square boolean matrices stored as one bitset per row,
// and the reflexive-transitive closure of a relation given as adjacency lists.
//
// BitMatrix rows are *bitset.BitSet values, so whole-row set algebra
// (union, intersection, superset tests) runs word-parallel. Closure fills a
// BitMatrix with Warshall's algorithm in O(n³/64) time.
//
// Matrices are best for small relations where O(n²/64) memory is acceptable;
// larger order relations are answered row by row (see bfs).
package matrix
