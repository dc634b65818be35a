package avv

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/visibility/bfs"
	"github.com/katalvlaran/visibility/core"
)

// Compute returns the same mapping as Scores, running the per-source
// traversals on up to Options.Workers goroutines.
//
// The Neighbor Index is built once and shared read-only; each worker owns
// its Depth Map and expanded set. Results are written to a slice slot per
// node and folded into the map after all workers finish, so no locking is
// needed.
//
// Errors:
//   - ErrOptionViolation for bad options.
//   - ctx.Err() (wrapped with the source node) when ctx is cancelled.
func Compute[N core.NodeID](ctx context.Context, edges []core.Edge[N], opts ...Option) (map[N]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	idx := core.NewIndex(edges)
	nodes := idx.Nodes()
	scores := make([]float64, len(nodes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, n := range nodes {
		g.Go(func() error {
			res, err := bfs.Depths(idx, n,
				bfs.WithContext[N](gctx),
				bfs.WithMaxDepth[N](o.MaxDepth),
			)
			if err != nil {
				return fmt.Errorf("avv: source %v: %w", n, err)
			}
			scores[i] = Aggregate(idx, res)
			o.Observer.ObserveSource(len(res.Depth), res.MaxDepth())

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[N]float64, len(nodes))
	for i, n := range nodes {
		out[n] = scores[i]
	}

	elapsed := time.Since(start)
	o.Observer.ObserveRun(idx.Len(), idx.EdgeCount(), elapsed)
	o.Logger.WithFields(logrus.Fields{
		"nodes":   idx.Len(),
		"edges":   idx.EdgeCount(),
		"loops":   idx.LoopCount(),
		"workers": o.Workers,
		"elapsed": elapsed,
	}).Debug("avv: scores computed")

	return out, nil
}
