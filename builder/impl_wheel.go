// File: impl_wheel.go
// Role: Wheel(n), a hub joined to every vertex of an (n-1)-cycle.
//
// Contract:
//   - n >= 4 (else ErrTooFewVertices); the rim is a cycle of n-1 >= 3.
//   - Vertex 0 is the hub, 1..n-1 the rim.
//   - Emits the rim cycle first, then the spokes: 2(n-1) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for the wheel W_n with hub 0.
func Wheel(n int) Constructor {
	return func(_ builderConfig) ([][2]int, error) {
		if n < minWheelNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		pairs := ring(1, n-1)

		return append(pairs, spokes(0, 1, n-1)...), nil
	}
}
