// Package builder generates edge lists for canonical topologies: paths,
// cycles, stars, complete graphs, wheels and random multigraphs.
//
// A Constructor emits vertex-index pairs over 0..n-1. Build runs one or more
// constructors over a shared index space, applies the configured edge
// policy (multiplicity, self-loops, shuffling) and maps indices to node IDs:
//
//	edges, err := builder.Build(
//		[]builder.BuilderOption{builder.WithMultiplicity(2)},
//		builder.Cycle(5),
//	)
//
// Constructors compose. Two constructors over the same indices overlay their
// edges; Shift moves a constructor to a disjoint index range, which is how
// multi-component inputs are assembled:
//
//	edges, _ := builder.Build(nil, builder.Star(4), builder.Shift(10, builder.Path(3)))
//
// Determinism: every constructor emits pairs in a fixed order. Stochastic
// constructors and WithShuffle draw only from the configured RNG, so a fixed
// WithSeed reproduces the same edge list.
//
// Errors are sentinels wrapped with the constructor name and parameters:
//   - ErrTooFewVertices if n is below the topology's minimum.
//   - ErrInvalidProbability if p is outside [0,1].
//   - ErrNeedRandSource if randomness is needed and no RNG is configured.
//   - ErrConstructFailed if a nil Constructor is passed.
//
// Option constructors panic on meaningless input (WithRand(nil),
// WithMultiplicity(0)); constructors themselves never panic.
package builder
