package avv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/visibility/bfs"
	"github.com/katalvlaran/visibility/core"
)

// Aggregate folds a Depth Map into an AVV value using the degrees of idx.
//
// Degrees are first summed per depth as integers; each layer sum is then
// divided by 2^depth with math.Ldexp, which is exact for every layer a
// float64 can represent. Layers are accumulated in ascending depth order.
func Aggregate[N core.NodeID](idx *core.Index[N], res *bfs.Result[N]) float64 {
	layers := make([]int, res.MaxDepth()+1)
	for v, d := range res.Depth {
		layers[d] += idx.Degree(v)
	}

	var sum float64
	for d, deg := range layers {
		sum += math.Ldexp(float64(deg), -d)
	}

	return sum
}

// Score returns the AVV of source over a prebuilt index. Traversal options
// (context, depth limit, hooks) are passed through to bfs.Depths.
//
// A node without edges scores 0; errors are those of bfs.Depths.
func Score[N core.NodeID](idx *core.Index[N], source N, opts ...bfs.Option[N]) (float64, error) {
	res, err := bfs.Depths(idx, source, opts...)
	if err != nil {
		return 0, err
	}

	return Aggregate(idx, res), nil
}

// Scores maps every node of edges to its AVV. It is a pure function of
// its input: no caches, no shared state, one Depth Map per source.
// An empty edge list yields an empty map.
func Scores[N core.NodeID](edges []core.Edge[N]) map[N]float64 {
	idx := core.NewIndex(edges)
	out := make(map[N]float64, idx.Len())
	for _, n := range idx.Nodes() {
		score, err := Score(idx, n)
		if err != nil {
			// Every source is drawn from idx, so Score cannot report a
			// missing node. Reaching this means the Index is corrupt.
			panic(fmt.Sprintf("avv: scoring indexed node %v: %v", n, err))
		}
		out[n] = score
	}

	return out
}
