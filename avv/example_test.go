package avv_test

import (
	"fmt"

	"github.com/katalvlaran/visibility/avv"
	"github.com/katalvlaran/visibility/core"
)

// ExampleScores scores a node with a self-loop and a double edge to its peer.
func ExampleScores() {
	scores := avv.Scores(core.EdgesOf([][2]int{{1, 1}, {1, 2}, {2, 1}}))
	fmt.Println(scores[1], scores[2])
	// Output:
	// 5 4
}
