package core_test

import (
	"fmt"

	"github.com/katalvlaran/visibility/core"
)

// ExampleNewIndex shows how loops and parallel edges shape the neighbor multiset.
func ExampleNewIndex() {
	edges := core.EdgesOf([][2]int{{1, 1}, {1, 2}, {2, 1}})
	idx := core.NewIndex(edges)

	for _, n := range idx.Nodes() {
		nbrs, _ := idx.Neighbors(n)
		fmt.Printf("%d: %v (degree %d)\n", n, nbrs, idx.Degree(n))
	}
	// Output:
	// 1: [1 1 2 2] (degree 4)
	// 2: [1 1] (degree 2)
}
