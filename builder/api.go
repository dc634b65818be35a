// File: api.go
// Role: Constructor type and the Build entry points.
//
// Implementation:
//   - Stage 1: run each constructor in argument order, concatenating pairs.
//   - Stage 2: repeat every pair cfg.multiplicity times, in place.
//   - Stage 3: append one loop per distinct vertex, ascending, if cfg.loops.
//   - Stage 4: shuffle and flip endpoints if cfg.shuffle.
//   - Stage 5: map indices to node IDs.
//
// Complexity: O(k·E + V·log V) for E constructed edges and multiplicity k.

package builder

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/visibility/core"
)

// Constructor emits the undirected edges of one topology as vertex-index
// pairs. It must not retain cfg.
type Constructor func(cfg builderConfig) ([][2]int, error)

// Build runs cons with bopts and returns integer-labeled edges.
func Build(bopts []BuilderOption, cons ...Constructor) ([]core.Edge[int], error) {
	return BuildWith(func(i int) int { return i }, bopts, cons...)
}

// BuildStrings is Build with decimal string labels ("0", "1", ...).
func BuildStrings(bopts []BuilderOption, cons ...Constructor) ([]core.Edge[string], error) {
	return BuildWith(strconv.Itoa, bopts, cons...)
}

// BuildWith runs cons with bopts and labels vertex i as id(i).
// id must be injective over the indices in use.
func BuildWith[N core.NodeID](id func(int) N, bopts []BuilderOption, cons ...Constructor) ([]core.Edge[N], error) {
	if id == nil {
		return nil, fmt.Errorf("BuildWith: nil id func: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.shuffle && cfg.rng == nil {
		return nil, fmt.Errorf("BuildWith: WithShuffle: %w", ErrNeedRandSource)
	}

	var pairs [][2]int
	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("BuildWith: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		ps, err := con(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildWith: %w", err)
		}
		pairs = append(pairs, ps...)
	}

	pairs = repeat(pairs, cfg.multiplicity)
	if cfg.loops {
		pairs = appendLoops(pairs)
	}
	if cfg.shuffle {
		cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		for k := range pairs {
			if cfg.rng.Intn(2) == 1 {
				pairs[k][0], pairs[k][1] = pairs[k][1], pairs[k][0]
			}
		}
	}

	edges := make([]core.Edge[N], len(pairs))
	for k, p := range pairs {
		edges[k] = core.NewEdge(id(p[0]), id(p[1]))
	}

	return edges, nil
}

// Shift returns a Constructor that runs con and adds offset to every index.
// Shifting by at least the size of the other constructors keeps components
// disjoint.
func Shift(offset int, con Constructor) Constructor {
	return func(cfg builderConfig) ([][2]int, error) {
		if con == nil {
			return nil, fmt.Errorf("Shift(%d): %w", offset, ErrConstructFailed)
		}
		pairs, err := con(cfg)
		if err != nil {
			return nil, err
		}
		for k := range pairs {
			pairs[k][0] += offset
			pairs[k][1] += offset
		}

		return pairs, nil
	}
}

// repeat emits each pair k times consecutively.
func repeat(pairs [][2]int, k int) [][2]int {
	if k == 1 {
		return pairs
	}
	out := make([][2]int, 0, len(pairs)*k)
	for _, p := range pairs {
		for range k {
			out = append(out, p)
		}
	}

	return out
}

// appendLoops adds (v,v) for every distinct vertex of pairs, ascending.
func appendLoops(pairs [][2]int) [][2]int {
	seen := make([]int, 0, 2*len(pairs))
	for _, p := range pairs {
		seen = append(seen, p[0], p[1])
	}
	slices.Sort(seen)
	for _, v := range slices.Compact(seen) {
		pairs = append(pairs, [2]int{v, v})
	}

	return pairs
}
