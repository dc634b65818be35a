// Package core defines the edge-list input model and the read-only
// adjacency structures the AVV pipeline is built on.
//
// The graph G = (V,E) is undirected and may contain:
//
//   - Self-loops (From == To). A loop contributes two half-edges, so the
//     loop vertex appears twice in its own neighbor list and its degree
//     grows by 2.
//   - Parallel edges. Repeated edges are never deduplicated; each copy
//     adds one more adjacency entry on both endpoints.
//
// Two constructors derive everything from a raw []Edge:
//
//	NodeSet(edges) []N     // distinct endpoints, sorted ascending, O(E + V·log V)
//	NewIndex(edges) *Index // neighbor multiset per vertex, O(E + V·log V)
//
// An Index is immutable once built. All of its methods are pure reads, so
// one Index may be shared by any number of goroutines without locking;
// this is what lets the avv package fan per-source traversals out across
// workers.
//
// Node identifiers are any cmp.Ordered type. Ordering is used only to make
// Nodes() and NodeSet() deterministic; no algorithm depends on it.
package core
