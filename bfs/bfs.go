// Package bfs provides breadth-first depth assignment over a core.Index,
// returning the Depth Map, parent links, and expansion order.
//
// The frontier is strictly first-in-first-out, so nodes are discovered in
// non-decreasing distance from the source and the depth written on first
// discovery is the shortest-path distance.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/visibility/core"
)

// queueItem pairs a node ID with the depth recorded for it.
type queueItem[N core.NodeID] struct {
	id    N
	depth int
}

// walker encapsulates mutable traversal state. One walker serves exactly
// one source; nothing in it is shared across traversals.
type walker[N core.NodeID] struct {
	index    *core.Index[N]
	opts     Options[N]
	ctx      context.Context
	queue    []queueItem[N]
	expanded map[N]bool
	res      *Result[N]
}

// Depths runs a breadth-first traversal of idx starting from source,
// applying any number of functional Options.
//
// Every neighbor entry of an expanded node is pushed onto the frontier,
// duplicates from loops and parallel edges included, unless that neighbor
// was already expanded. A depth is recorded only on first discovery and is
// never overwritten. A node popped after its expansion is skipped.
//
// Returns ErrIndexNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any wrapped OnVisit error.
func Depths[N core.NodeID](idx *core.Index[N], source N, opts ...Option[N]) (*Result[N], error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !idx.Has(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	n := idx.Len()
	w := &walker[N]{
		index:    idx,
		opts:     o,
		ctx:      o.Ctx,
		queue:    make([]queueItem[N], 0, n),
		expanded: make(map[N]bool, n),
		res: &Result[N]{
			Source: source,
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	// Seed: the source sits at depth 0 with no parent.
	w.res.Depth[source] = 0
	w.enqueue(source, 0)

	return w.res, w.loop()
}

// enqueue calls OnEnqueue and pushes id onto the back of the frontier.
func (w *walker[N]) enqueue(id N, d int) {
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// dequeue pops the front item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// loop drains the frontier until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.expanded[item.id] {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.discover(item); err != nil {
			return err
		}
	}

	return nil
}

// visit marks the node expanded, records it in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.expanded[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// discover walks the neighbor multiset of item, assigns depths on first
// discovery and pushes every neighbor that is not yet expanded.
func (w *walker[N]) discover(item queueItem[N]) error {
	neighbors, err := w.index.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		d, seen := w.res.Depth[nbr]
		if !seen {
			if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
				continue
			}
			d = nextDepth
			w.res.Depth[nbr] = d
			w.res.Parent[nbr] = item.id
		}
		if !w.expanded[nbr] {
			w.enqueue(nbr, d)
		}
	}

	return nil
}
