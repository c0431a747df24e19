// Package bfs implements breadth-first search over graphs given as index
// adjacency lists (adj[i] = direct successors of vertex i).
//
// Walk returns the visit order and per-vertex depth (-1 when unreached);
// Reach returns the reachable set as a bitset. In lattix, Reach over the
// upper-cover lists yields a principal filter ↑a, and over the lower-cover
// lists a principal ideal ↓a, when the poset is too large for a full
// closure matrix, and Walk's depths give the cover distance between two
// comparable elements.
//
// Complexity: Time O(V+E), Memory O(V).
package bfs
