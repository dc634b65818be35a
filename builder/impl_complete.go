// File: impl_complete.go
// Role: Complete(n), the complete graph K_n.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits (i, j) for every i < j in lexicographic order: n(n-1)/2 edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor for K_n over 0..n-1.
func Complete(n int) Constructor {
	return func(_ builderConfig) ([][2]int, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		pairs := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}

		return pairs, nil
	}
}
