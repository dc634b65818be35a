// File: options.go
// Role: functional options for Build.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Seeding is explicit: WithSeed or WithRand; there is no global RNG.
//   - Edge policy (multiplicity, loops, shuffle) is applied by Build after
//     every constructor has run, so it is uniform across topologies.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a build by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved option set passed to every Constructor.
type builderConfig struct {
	rng          *rand.Rand // nil unless WithSeed/WithRand
	multiplicity int        // copies of every constructed edge, >= 1
	loops        bool       // add one self-loop per vertex
	shuffle      bool       // permute edges and flip endpoints
}

// newBuilderConfig applies opts over the defaults: no RNG, multiplicity 1,
// no loops, stable order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{multiplicity: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors and WithShuffle.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMultiplicity emits every constructed edge k times, producing parallel
// edges. Panics if k < 1.
func WithMultiplicity(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithMultiplicity(%d): k must be >= 1", k))
	}

	return func(c *builderConfig) {
		c.multiplicity = k
	}
}

// WithLoops adds one self-loop to every vertex that appears in the
// constructed edges. Loops are not multiplied.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}

// WithShuffle permutes the final edge list and flips the endpoints of a
// random subset of edges. Requires an RNG.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}
