// File: impl_star.go
// Role: Star(n), one hub joined to n-1 leaves.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; emits (0, i) for i = 1..n-1, ascending.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n with hub 0.
func Star(n int) Constructor {
	return func(_ builderConfig) ([][2]int, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return spokes(0, 1, n-1), nil
	}
}

// spokes joins hub to leaves first..first+count-1.
func spokes(hub, first, count int) [][2]int {
	pairs := make([][2]int, 0, count)
	for i := 0; i < count; i++ {
		pairs = append(pairs, [2]int{hub, first + i})
	}

	return pairs
}
