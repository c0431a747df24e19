// Package dfs implements depth-first topological sorting over graphs given
// as index adjacency lists (adj[i] = direct successors of vertex i).
//
// What:
//
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG); for a cover relation this is a linear extension
//     of the partial order.
//   - Cycle reporting: when a back-edge is found the Gray path is returned
//     as a *CycleError so callers can show the offending vertices.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - CycleError:  concrete cycle, unwraps to ErrCycleDetected
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrCycleDetected     cycle discovered (via *CycleError)
//   - ErrVertexOutOfRange  adjacency entry outside [0, V)
package dfs
