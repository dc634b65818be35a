// Package bfs provides tunable options and error definitions
// for breadth-first depth assignment over a core.Index.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/visibility/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceNotFound is returned when the source node is absent from the index.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrIndexNil is returned if a nil index pointer is passed.
	ErrIndexNil = errors.New("bfs: index is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Depths is invoked.
type Option[N core.NodeID] func(*Options[N])

// Options holds parameters and callbacks to customize a traversal.
type Options[N core.NodeID] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called each time a node is pushed onto the frontier.
	// Receives node ID and the depth recorded for it.
	OnEnqueue func(id N, depth int)

	// OnDequeue is called for every node popped from the frontier,
	// including already-expanded ones that are then skipped.
	OnDequeue func(id N, depth int)

	// OnVisit is called when a node is expanded. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id N, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[N core.NodeID]() Options[N] {
	return Options[N]{
		Ctx:       context.Background(),
		OnEnqueue: func(N, int) {},
		OnDequeue: func(N, int) {},
		OnVisit:   func(N, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N core.NodeID](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N core.NodeID](fn func(id N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N core.NodeID](fn func(id N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an error
// from this callback stops the traversal.
func WithOnVisit[N core.NodeID](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery past the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N core.NodeID](d int) Option[N] {
	return func(o *Options[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of one traversal:
//   - Source: the start node.
//   - Order: nodes in expansion order.
//   - Depth: the Depth Map, node → distance (in edges) from Source.
//   - Parent: node → the node whose expansion first discovered it.
type Result[N core.NodeID] struct {
	Source N
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether id entered the Depth Map.
func (r *Result[N]) Reached(id N) bool {
	_, ok := r.Depth[id]

	return ok
}

// MaxDepth returns the largest depth in the Depth Map (the eccentricity of
// Source within its component).
func (r *Result[N]) MaxDepth() int {
	deepest := 0
	for _, d := range r.Depth {
		deepest = max(deepest, d)
	}

	return deepest
}

// Layers groups the Depth Map by distance: Layers()[d] holds every node at
// depth d, sorted ascending.
func (r *Result[N]) Layers() [][]N {
	layers := make([][]N, r.MaxDepth()+1)
	for id, d := range r.Depth {
		layers[d] = append(layers[d], id)
	}
	for _, l := range layers {
		slices.Sort(l)
	}

	return layers
}

// PathTo reconstructs the path from the source to dest.
// Returns an error if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
