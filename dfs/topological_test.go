package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// edgesRespected asserts u precedes v for every edge u→v.
func edgesRespected(t *testing.T, adj [][]int, order []int) {
	t.Helper()
	for u, succ := range adj {
		for _, v := range succ {
			assert.Less(t, position(order, u), position(order, v), "edge %d→%d should be respected", u, v)
		}
	}
}

// TestTopo_EmptyGraph covers a graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that vertices without edges all appear.
func TestTopo_NoEdges(t *testing.T) {
	order, err := dfs.TopologicalSort([][]int{{}, {}, {}})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, order)
}

// TestTopo_SimpleChain verifies linear chain 0→1→2 yields [0,1,2].
func TestTopo_SimpleChain(t *testing.T) {
	order, err := dfs.TopologicalSort([][]int{{1}, {2}, {}})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopo_BranchingDAG checks 0→1 and 0→2: 0 must come first.
func TestTopo_BranchingDAG(t *testing.T) {
	order, err := dfs.TopologicalSort([][]int{{1, 2}, {}, {}})
	assert.NoError(t, err)
	assert.Equal(t, 0, order[0])
	assert.ElementsMatch(t, []int{1, 2}, order[1:])
}

// TestTopo_ReverseIndexed uses edges that point to smaller indices.
func TestTopo_ReverseIndexed(t *testing.T) {
	// 3→2→1→0
	adj := [][]int{{}, {0}, {1}, {2}}
	order, err := dfs.TopologicalSort(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, order)
}

// TestTopo_ComplexDAG builds a DAG of 10 vertices with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	adj := [][]int{
		0: {2, 1},
		1: {4, 3},
		2: {4},
		3: {5},
		4: {6},
		5: {7},
		6: {8},
		7: {9},
		8: {},
		9: {},
	}
	order, err := dfs.TopologicalSort(adj)
	require.NoError(t, err)
	assert.Len(t, order, 10)
	edgesRespected(t, adj, order)
}

// TestTopo_Deterministic runs the same input twice.
func TestTopo_Deterministic(t *testing.T) {
	adj := [][]int{{3, 1}, {2}, {}, {2}, {0}}
	a, err := dfs.TopologicalSort(adj)
	require.NoError(t, err)
	b, err := dfs.TopologicalSort(adj)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	edgesRespected(t, adj, a)
}

// TestTopo_Cycle ensures that a cycle returns ErrCycleDetected with its path.
func TestTopo_Cycle(t *testing.T) {
	// 0→1→2→0, plus a tail 3→0
	order, err := dfs.TopologicalSort([][]int{{1}, {2}, {0}, {0}})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	var ce *dfs.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []int{0, 1, 2}, ce.Cycle)
	assert.Equal(t, "dfs: cycle detected: 0 -> 1 -> 2 -> 0", ce.Error())
}

// TestTopo_SelfLoop is the smallest cycle.
func TestTopo_SelfLoop(t *testing.T) {
	_, err := dfs.TopologicalSort([][]int{{}, {1}})

	var ce *dfs.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []int{1}, ce.Cycle)
}

// TestTopo_OutOfRange rejects dangling edges.
func TestTopo_OutOfRange(t *testing.T) {
	_, err := dfs.TopologicalSort([][]int{{1}, {7}})
	assert.ErrorIs(t, err, dfs.ErrVertexOutOfRange)
}
