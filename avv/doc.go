// Package avv computes the Aggregate Visibility Value of every node of an
// undirected edge list.
//
// For a source n with Depth Map D (see package bfs):
//
//	AVV(n) = Σ_{v ∈ D} deg(v) / 2^D[v]
//
// where deg(v) is the size of v's neighbor multiset in core.Index, so a
// self-loop adds 2 and each parallel edge adds 1. Nodes in other
// components never enter D and contribute nothing.
//
// Pipeline:
//
//	edges ─▶ core.NodeSet ─▶ core.NewIndex ─▶ bfs.Depths (per node) ─▶ Aggregate
//
// Entry points:
//
//	Scores(edges)               // sequential, pure, never fails
//	Compute(ctx, edges, opts…)  // same values, per-source work fanned out over workers
//	Score(idx, n)               // one source against a prebuilt index
//
// Aggregation sums degrees per depth layer as integers and scales each
// layer by an exact power of two, accumulating layers in ascending depth.
// The result therefore does not depend on map iteration or edge order:
// shuffled inputs and repeated calls return bit-identical values.
package avv
