// File: impl_random.go
// Role: stochastic constructors.
//
// Contract:
//   - RandomSparse(n, p): n >= 1, p in [0,1]. Each pair i < j is kept with
//     probability p, scanned in lexicographic order. The RNG is needed only
//     when 0 < p < 1. Vertices left without edges do not appear in the
//     output, since an edge list cannot carry isolated vertices.
//   - RandomMulti(n, m): n >= 1, m >= 0. Draws m edges with independent
//     uniform endpoints, so loops and parallel edges occur. Needs the RNG
//     when m > 0.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomMulti  = "RandomMulti"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) ([][2]int, error) {
		if n < minRandomNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return nil, fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return nil, fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrNeedRandSource)
		}

		var pairs [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}

		return pairs, nil
	}
}

// RandomMulti returns a Constructor for m uniformly drawn edges over 0..n-1.
func RandomMulti(n, m int) Constructor {
	return func(cfg builderConfig) ([][2]int, error) {
		if n < minRandomNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomMulti, n, minRandomNodes, ErrTooFewVertices)
		}
		if m < 0 {
			return nil, fmt.Errorf("%s: m=%d < 0: %w", methodRandomMulti, m, ErrTooFewVertices)
		}
		if m > 0 && cfg.rng == nil {
			return nil, fmt.Errorf("%s: m=%d: %w", methodRandomMulti, m, ErrNeedRandSource)
		}
		pairs := make([][2]int, m)
		for k := range pairs {
			pairs[k] = [2]int{cfg.rng.Intn(n), cfg.rng.Intn(n)}
		}

		return pairs, nil
	}
}
