// Package bfs computes per-source Depth Maps over a core.Index.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Order: expansion sequence
//   - Depth: map from node → distance (edges) from the source
//   - Parent: map from node → the node that first discovered it
//   - Supports functional hooks at three stages:
//   - OnEnqueue (each push onto the frontier)
//   - OnDequeue (each pop, including skipped re-pops)
//   - OnVisit   (when expanding; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Frontier discipline
//
//	The frontier is a FIFO queue. Neighbor entries are pushed once per
//	adjacency entry, so loops and parallel edges can push the same node
//	more than once; the expanded set turns every re-pop into a no-op and a
//	depth, once written, is never overwritten. Because FIFO order pops
//	nodes in non-decreasing depth, the first write is the minimum distance.
//	There is no LIFO mode.
//
// Determinism
//
//	core.Index keeps neighbor multisets in input edge order, so Order and
//	Parent follow the edge list. Depth never depends on edge order.
//
// Complexity (V = |reachable nodes|, E = |incident adjacency entries|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (frontier may hold one entry per adjacency entry)
//
// Usage
//
//	res, err := bfs.Depths(idx, 1)
//	if err != nil {
//	    // ErrIndexNil, ErrSourceNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	fmt.Println(res.Depth)
//
//	res, err = bfs.Depths(idx, 1,
//	    bfs.WithContext[int](ctx),
//	    bfs.WithMaxDepth[int](3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
package bfs
