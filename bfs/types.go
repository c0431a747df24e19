// Package bfs provides error definitions and result types
// for breadth-first search over index adjacency lists.
package bfs

import (
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrVertexOutOfRange is returned when an adjacency entry is not a vertex.
	ErrVertexOutOfRange = errors.New("bfs: vertex out of range")
)

// Result captures the outcome of a breadth-first traversal.
type Result struct {
	// Order records vertices in the sequence they were visited.
	Order []int

	// Depth maps each vertex to its distance from the start; -1 if unreached.
	Depth []int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
