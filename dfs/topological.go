// Package dfs provides core algorithms on directed graphs given as index
// adjacency lists, including topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, a *CycleError wrapping ErrCycleDetected
// is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
package dfs

import "fmt"

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	adj   [][]int // successor lists
	state []int   // visitation state: 0=White,1=Gray,2=Black
	stack []int   // current Gray path, used to report cycles
	order []int   // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices 0..len(adj)-1.
// Roots are tried in ascending index order and successors in adjacency order,
// so the result is deterministic for a given input.
// Returns ErrVertexOutOfRange for a dangling edge and *CycleError if a cycle exists.
func TopologicalSort(adj [][]int) ([]int, error) {
	// 1. Initialize sorter state; all vertices start White.
	n := len(adj)
	sorter := &topoSorter{
		adj:   adj,
		state: make([]int, n),
		stack: make([]int, 0, n),
		order: make([]int, 0, n), // capacity hint for post-order
	}
	// 2. Drive DFS from every unvisited vertex
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 3. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Mark as in-progress (Gray) and push onto the path
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	// 2. Explore each outgoing edge
	for _, next := range t.adj[id] {
		if next < 0 || next >= len(t.adj) {
			return fmt.Errorf("%w: edge %d->%d with %d vertices", ErrVertexOutOfRange, id, next, len(t.adj))
		}
		switch t.state[next] {
		case White:
			if err := t.visit(next); err != nil {
				return err
			}
		case Gray:
			// Back-edge: the path from next to id closes a cycle.
			return &CycleError{Cycle: t.cycleFrom(next)}
		}
	}

	// 3. Mark as fully explored (Black), pop, record in post-order
	t.state[id] = Black
	t.stack = t.stack[:len(t.stack)-1]
	t.order = append(t.order, id)

	return nil
}

// cycleFrom copies the Gray path suffix starting at v.
func (t *topoSorter) cycleFrom(v int) []int {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] == v {
			return append([]int(nil), t.stack[i:]...)
		}
	}

	return []int{v}
}
