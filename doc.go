// Package visibility scores the nodes of an undirected multigraph by their
// Aggregate Visibility Value (AVV): the degrees of every reachable node,
// each discounted by one half per hop of breadth-first distance.
//
// What is inside?
//
//	core/     — Edge model, NodeSet extraction and the read-only Neighbor Index
//	bfs/      — FIFO breadth-first Depth Maps with hooks, depth limit and cancellation
//	avv/      — AVV aggregation, sequential Scores and parallel Compute
//	builder/  — edge-list generators for paths, cycles, stars, complete graphs and wheels
//	ingest/   — delimited edge-list reader (header skipped, ParseError on bad records)
//	report/   — table, JSON, YAML and CSV renderers for score mappings
//	selftest/ — the fixed regression suite
//	metrics/  — Prometheus collectors fed by avv.Compute
//	config/   — environment configuration for the CLI
//	cmd/avv   — the command-line entry point
//
// Quick ASCII example:
//
//	1 ─ 2
//	 ╲ ╱
//	  3
//
// Every node of the triangle scores 2 + (2+2)/2 = 4.
//
//	scores := avv.Scores(core.EdgesOf([][2]int{{1, 2}, {2, 3}, {3, 1}}))
//
// Self-loops count twice toward a node's degree, parallel edges once per
// copy, and nodes in other components never contribute.
package visibility
