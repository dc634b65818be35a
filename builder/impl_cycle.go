// File: impl_cycle.go
// Role: Cycle(n), the simple cycle C_n.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Emits (i, (i+1) mod n) for i = 0..n-1, ascending.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the n-vertex cycle 0-1-...-(n-1)-0.
func Cycle(n int) Constructor {
	return func(_ builderConfig) ([][2]int, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(0, n), nil
	}
}

// ring emits the cycle over first..first+size-1.
func ring(first, size int) [][2]int {
	pairs := make([][2]int, 0, size)
	for i := 0; i < size; i++ {
		pairs = append(pairs, [2]int{first + i, first + (i+1)%size})
	}

	return pairs
}
