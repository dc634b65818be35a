// File: impl_path.go
// Role: Path(n), the simple path P_n.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits (i, i+1) for i = 0..n-2, ascending.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the n-vertex path 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(_ builderConfig) ([][2]int, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		pairs := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			pairs = append(pairs, [2]int{i, i + 1})
		}

		return pairs, nil
	}
}
