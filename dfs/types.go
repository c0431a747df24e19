// Package dfs defines the visitation states and sentinel errors shared by
// the depth-first routines over index adjacency lists.
package dfs

import (
	"errors"
	"fmt"
	"strings"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrVertexOutOfRange indicates an adjacency entry that does not name
	// a vertex of the graph.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// CycleError reports one concrete cycle found during traversal.
// Cycle lists the vertices in edge order; the last vertex has an edge back
// to the first. It matches ErrCycleDetected under errors.Is.
type CycleError struct {
	Cycle []int
}

// Error renders the cycle as "dfs: cycle detected: 1 -> 2 -> 1".
func (e *CycleError) Error() string {
	parts := make([]string, 0, len(e.Cycle)+1)
	for _, v := range e.Cycle {
		parts = append(parts, fmt.Sprint(v))
	}
	if len(e.Cycle) > 0 {
		parts = append(parts, fmt.Sprint(e.Cycle[0]))
	}

	return ErrCycleDetected.Error() + ": " + strings.Join(parts, " -> ")
}

// Unwrap exposes ErrCycleDetected.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}
