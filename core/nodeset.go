// File: nodeset.go
// Role: NodeSet extraction, the first stage of the pipeline.

package core

import "slices"

// NodeSet returns the distinct identifiers appearing as either endpoint of
// any edge, sorted ascending.
//
// Contract:
//   - Every endpoint of every edge appears exactly once in the result.
//   - An empty or nil edge list yields an empty, non-nil slice.
//
// Complexity: Time O(E + V·log V), Space O(V).
func NodeSet[N NodeID](edges []Edge[N]) []N {
	seen := make(map[N]struct{}, len(edges))
	nodes := make([]N, 0, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.From]; !ok {
			seen[e.From] = struct{}{}
			nodes = append(nodes, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			seen[e.To] = struct{}{}
			nodes = append(nodes, e.To)
		}
	}
	slices.Sort(nodes)

	return nodes
}
