// Package bfs provides breadth-first search over index adjacency lists,
// returning unweighted distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex.
// Walk records the distances (cover distance in a Hasse diagram); Reach
// is the set-valued shortcut used for on-demand principal filters/ideals.
package bfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	queue []int
	res   *Result
}

// Walk runs breadth-first search on adj starting from start.
// Returns ErrStartOutOfRange or ErrVertexOutOfRange.
// Complexity: O(V + E).
func Walk(adj [][]int, start int) (*Result, error) {
	n := len(adj)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// Prepare walker; every vertex starts unreached.
	w := &walker{
		adj:   adj,
		queue: make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
	}

	// Seed queue with start vertex
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty or a dangling edge.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)

		for _, next := range w.adj[id] {
			if next < 0 || next >= len(w.adj) {
				return fmt.Errorf("%w: edge %d->%d", ErrVertexOutOfRange, id, next)
			}
			if w.res.Depth[next] >= 0 {
				continue // already seen
			}
			w.res.Depth[next] = d + 1
			w.queue = append(w.queue, next)
		}
	}

	return nil
}

// Reach returns the set of vertices reachable from start by zero or more
// edges, as a bitset of width len(adj).
// Complexity: O(V + E).
func Reach(adj [][]int, start int) (*bitset.BitSet, error) {
	res, err := Walk(adj, start)
	if err != nil {
		return nil, err
	}

	b := bitset.New(uint(len(adj)))
	for _, v := range res.Order {
		b.Set(uint(v))
	}

	return b, nil
}
