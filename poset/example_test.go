package poset_test

import (
	"fmt"

	"github.com/katalvlaran/lattix/poset"
)

// ExampleNew builds the diamond 0 < {a, b} < 1 and queries it.
func ExampleNew() {
	p, err := poset.New([]string{"0", "a", "b", "1"}, [][]int{{1, 2}, {3}, {3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	le, _ := p.Leq(0, 3)
	cmp, _ := p.Comparable(1, 2)
	fmt.Println(le, cmp)
	fmt.Println(p.Edges())
	// Output:
	// true false
	// [0->1 0->2 1->3 2->3]
}

// ExampleFromLeq derives covers from divisibility.
func ExampleFromLeq() {
	p, err := poset.FromLeq([]int{1, 2, 3, 6}, func(a, b int) bool { return b%a == 0 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	up, _ := p.UpSet(1)
	fmt.Println(p.Store().Pick(up))
	// Output:
	// [2 6]
}
