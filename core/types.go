// File: types.go
// Role: Edge model and the NodeID constraint shared by every package.

package core

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound indicates a lookup referenced a node absent from the Index.
var ErrNodeNotFound = errors.New("core: node not found")

// NodeID is the constraint satisfied by node identifiers: integer and string
// kinds, named types included. Floats are excluded because NaN never equals
// itself and so cannot key the neighbor map.
type NodeID interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~string
}

// Edge is one (From, To) record of the input edge list.
//
// Direction carries no meaning: the graph is undirected. From == To denotes
// a self-loop. Edges are values and are never deduplicated.
type Edge[N NodeID] struct {
	// From is the first endpoint as it appeared in the input.
	From N

	// To is the second endpoint as it appeared in the input.
	To N
}

// NewEdge is shorthand for Edge[N]{From: from, To: to}.
func NewEdge[N NodeID](from, to N) Edge[N] {
	return Edge[N]{From: from, To: to}
}

// IsLoop reports whether e connects a node to itself.
func (e Edge[N]) IsLoop() bool {
	return e.From == e.To
}

// String renders the edge as "(from,to)".
func (e Edge[N]) String() string {
	return fmt.Sprintf("(%v,%v)", e.From, e.To)
}

// EdgesOf converts literal pairs into an edge list. It keeps test tables and
// examples compact: EdgesOf([][2]int{{1, 2}, {2, 3}}).
func EdgesOf[N NodeID](pairs [][2]N) []Edge[N] {
	out := make([]Edge[N], len(pairs))
	for i, p := range pairs {
		out[i] = Edge[N]{From: p[0], To: p[1]}
	}

	return out
}
