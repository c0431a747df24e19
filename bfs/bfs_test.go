package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lattix/bfs"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// empty graph has no valid start
	if _, err := bfs.Walk(nil, 0); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("empty graph: want ErrStartOutOfRange, got %v", err)
	}
	// start vertex out of range
	adj := [][]int{{1}, {}}
	if _, err := bfs.Walk(adj, 2); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("missing start: want ErrStartOutOfRange, got %v", err)
	}
	// dangling edge
	if _, err := bfs.Walk([][]int{{3}}, 0); !errors.Is(err, bfs.ErrVertexOutOfRange) {
		t.Errorf("dangling edge: want ErrVertexOutOfRange, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.Walk([][]int{{}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
}

// TestBFS_DiamondDepths checks layers of 0→{1,2}→3.
func TestBFS_DiamondDepths(t *testing.T) {
	res, err := bfs.Walk([][]int{{1, 2}, {3}, {3}, {}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_Unreached leaves vertices above the start unvisited.
func TestBFS_Unreached(t *testing.T) {
	res, err := bfs.Walk([][]int{{1}, {2}, {}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Visited(0) {
		t.Errorf("vertex 0 should not be reached from 1")
	}
	if !res.Visited(2) {
		t.Errorf("vertex 2 should be reached from 1")
	}
	if res.Visited(9) {
		t.Errorf("out-of-range vertex reported visited")
	}
}

// TestReach returns the reachable set as a bitset.
func TestReach(t *testing.T) {
	b, err := bfs.Reach([][]int{{1, 2}, {3}, {3}, {}, {0}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for v, want := range []bool{false, true, false, true, false} {
		if got := b.Test(uint(v)); got != want {
			t.Errorf("Reach(1) contains %d = %v; want %v", v, got, want)
		}
	}
	if b.Count() != 2 {
		t.Errorf("Count = %d; want 2", b.Count())
	}
}
