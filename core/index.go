// File: index.go
// Role: Neighbor Index construction and read-only queries.
// Determinism:
//   - Nodes() is sorted ascending.
//   - Neighbors(n) preserves input edge order, duplicates included.
// Concurrency:
//   - An Index never mutates after construction; all reads are lock-free.

package core

import (
	"fmt"
	"slices"
)

// Index is the Neighbor Index: for every node, the multiset of adjacent
// node identifiers.
//
// Invariants:
//   - For an edge (a,b) with a != b, b appears once in adj[a] and a once in adj[b].
//   - For a self-loop (a,a), a appears twice in adj[a].
//   - Parallel edges contribute one entry per copy.
//   - Every node of the edge list has an entry, possibly empty.
type Index[N NodeID] struct {
	nodes []N       // sorted ascending
	adj   map[N][]N // node -> neighbor multiset, input order
	edges int       // number of input edges
	loops int       // number of self-loop edges
}

// NewIndex derives the node set from edges and builds the Neighbor Index.
// It never fails and never returns nil: the node set is taken from edges
// themselves, so every endpoint already has an entry.
//
// Complexity: Time O(E + V·log V), Space O(V + E).
func NewIndex[N NodeID](edges []Edge[N]) *Index[N] {
	idx := newIndex(len(edges), NodeSet(edges))
	for _, e := range edges {
		idx.link(e)
	}

	return idx
}

// BuildIndex builds the Neighbor Index from the full edge list and a node
// set, normally the output of NodeSet.
//
// Implementation:
//   - Stage 1: allocate an empty neighbor list for every node in nodes.
//   - Stage 2: for each edge (a,b), append b to a and a to b; a loop (a,a)
//     therefore appends a to its own list twice.
//
// Errors:
//   - ErrNodeNotFound if an edge endpoint is missing from nodes.
//
// Complexity: Time O(E + V·log V), Space O(V + E).
func BuildIndex[N NodeID](edges []Edge[N], nodes []N) (*Index[N], error) {
	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	idx := newIndex(len(edges), slices.Compact(sorted))

	for _, e := range edges {
		if _, ok := idx.adj[e.From]; !ok {
			return nil, fmt.Errorf("%w: endpoint %v of edge %s", ErrNodeNotFound, e.From, e)
		}
		if _, ok := idx.adj[e.To]; !ok {
			return nil, fmt.Errorf("%w: endpoint %v of edge %s", ErrNodeNotFound, e.To, e)
		}
		idx.link(e)
	}

	return idx, nil
}

// newIndex allocates an Index over sorted, duplicate-free nodes.
func newIndex[N NodeID](edges int, nodes []N) *Index[N] {
	idx := &Index[N]{
		nodes: nodes,
		adj:   make(map[N][]N, len(nodes)),
		edges: edges,
	}
	for _, n := range nodes {
		idx.adj[n] = []N{}
	}

	return idx
}

// link records the two half-edges of e; for a loop both land on the same node.
func (x *Index[N]) link(e Edge[N]) {
	x.adj[e.From] = append(x.adj[e.From], e.To)
	x.adj[e.To] = append(x.adj[e.To], e.From)
	if e.IsLoop() {
		x.loops++
	}
}

// Nodes returns a copy of the node set, sorted ascending.
func (x *Index[N]) Nodes() []N {
	return slices.Clone(x.nodes)
}

// Len returns the number of distinct nodes.
func (x *Index[N]) Len() int {
	return len(x.nodes)
}

// EdgeCount returns the number of input edges, parallel copies and loops included.
func (x *Index[N]) EdgeCount() int {
	return x.edges
}

// LoopCount returns the number of self-loop edges.
func (x *Index[N]) LoopCount() int {
	return x.loops
}

// Has reports whether n is a node of the index.
func (x *Index[N]) Has(n N) bool {
	_, ok := x.adj[n]

	return ok
}

// Neighbors returns the neighbor multiset of n in input order.
// The slice is shared with the Index and must be treated as read-only.
//
// Errors:
//   - ErrNodeNotFound if n is not a node of the index.
func (x *Index[N]) Neighbors(n N) ([]N, error) {
	nbrs, ok := x.adj[n]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	return nbrs, nil
}

// Degree returns len(Neighbors(n)): every incident edge counts once, every
// self-loop twice. Unknown nodes have degree 0.
func (x *Index[N]) Degree(n N) int {
	return len(x.adj[n])
}

// TotalDegree returns the sum of all degrees, always 2·EdgeCount().
func (x *Index[N]) TotalDegree() int {
	total := 0
	for _, nbrs := range x.adj {
		total += len(nbrs)
	}

	return total
}
