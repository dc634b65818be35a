package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/visibility/core"
)

type IndexSuite struct {
	suite.Suite
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

func (s *IndexSuite) TestNodeSetDedupAndSorted() {
	require := require.New(s.T())
	edges := core.EdgesOf([][2]int{{3, 1}, {1, 2}, {2, 3}, {3, 3}})
	require.Equal([]int{1, 2, 3}, core.NodeSet(edges))
}

func (s *IndexSuite) TestNodeSetEmpty() {
	require := require.New(s.T())
	require.Empty(core.NodeSet[int](nil))
	require.NotNil(core.NodeSet[int](nil), "empty input should give an empty, non-nil slice")
}

func (s *IndexSuite) TestSimpleEdgeMirrored() {
	require := require.New(s.T())
	idx := core.NewIndex(core.EdgesOf([][2]int{{1, 2}}))

	n1, err := idx.Neighbors(1)
	require.NoError(err)
	require.Equal([]int{2}, n1)
	n2, err := idx.Neighbors(2)
	require.NoError(err)
	require.Equal([]int{1}, n2)
}

func (s *IndexSuite) TestSelfLoopCountsTwice() {
	require := require.New(s.T())
	idx := core.NewIndex(core.EdgesOf([][2]int{{1, 1}}))

	nbrs, err := idx.Neighbors(1)
	require.NoError(err)
	require.Equal([]int{1, 1}, nbrs)
	require.Equal(2, idx.Degree(1))
	require.Equal(1, idx.LoopCount())
}

func (s *IndexSuite) TestParallelEdgesPreserved() {
	require := require.New(s.T())
	idx := core.NewIndex(core.EdgesOf([][2]int{{1, 2}, {2, 1}, {1, 2}}))

	require.Equal(3, idx.Degree(1))
	require.Equal(3, idx.Degree(2))
	require.Equal(3, idx.EdgeCount())
	require.Equal(6, idx.TotalDegree())
}

func (s *IndexSuite) TestDegreesMixedGraph() {
	require := require.New(s.T())
	// loop twice on 1 plus one edge to 2
	idx := core.NewIndex(core.EdgesOf([][2]int{{1, 1}, {1, 2}, {1, 1}}))

	require.Equal(5, idx.Degree(1))
	require.Equal(1, idx.Degree(2))
	require.Equal(2*idx.EdgeCount(), idx.TotalDegree())
}

func (s *IndexSuite) TestUnknownNode() {
	require := require.New(s.T())
	idx := core.NewIndex(core.EdgesOf([][2]int{{1, 2}}))

	require.False(idx.Has(9))
	require.Zero(idx.Degree(9))
	_, err := idx.Neighbors(9)
	require.True(errors.Is(err, core.ErrNodeNotFound), "got %v", err)
}

func (s *IndexSuite) TestBuildIndexRejectsForeignEndpoint() {
	require := require.New(s.T())
	_, err := core.BuildIndex(core.EdgesOf([][2]int{{1, 2}}), []int{1})
	require.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *IndexSuite) TestBuildIndexKeepsIsolatedNodes() {
	require := require.New(s.T())
	idx, err := core.BuildIndex(core.EdgesOf([][2]int{{1, 2}}), []int{2, 1, 7, 7})
	require.NoError(err)
	require.Equal([]int{1, 2, 7}, idx.Nodes())
	require.True(idx.Has(7))
	require.Zero(idx.Degree(7))
}

func (s *IndexSuite) TestNodesReturnsCopy() {
	require := require.New(s.T())
	idx := core.NewIndex(core.EdgesOf([][2]int{{1, 2}}))
	nodes := idx.Nodes()
	nodes[0] = 42
	require.Equal([]int{1, 2}, idx.Nodes())
}

func (s *IndexSuite) TestStringIDs() {
	require := require.New(s.T())
	idx := core.NewIndex([]core.Edge[string]{core.NewEdge("b", "a"), core.NewEdge("a", "a")})
	require.Equal([]string{"a", "b"}, idx.Nodes())
	require.Equal(3, idx.Degree("a"))
}

type stationID string

type userID uint16

// NewIndex must hand back a usable Index for every accepted identifier kind,
// including the degenerate edge lists.
func (s *IndexSuite) TestNewIndexNeverNil() {
	require := require.New(s.T())

	empty := core.NewIndex[int](nil)
	require.NotNil(empty)
	require.Zero(empty.Len())
	require.Empty(empty.Nodes())

	loops := core.NewIndex(core.EdgesOf([][2]int8{{-1, -1}, {-1, -1}}))
	require.NotNil(loops)
	require.Equal([]int8{-1}, loops.Nodes())
	require.Equal(4, loops.Degree(-1))
	require.Equal(2, loops.LoopCount())

	named := core.NewIndex([]core.Edge[stationID]{core.NewEdge[stationID]("", "x")})
	require.NotNil(named)
	require.Equal([]stationID{"", "x"}, named.Nodes())

	wide := core.NewIndex(core.EdgesOf([][2]userID{{65535, 0}}))
	require.NotNil(wide)
	require.Equal(1, wide.Degree(65535))
}

// NewIndex and BuildIndex over the derived node set agree edge for edge.
func (s *IndexSuite) TestNewIndexMatchesBuildIndex() {
	require := require.New(s.T())
	edges := core.EdgesOf([][2]int{{5, 1}, {1, 1}, {1, 5}, {2, 9}})

	built, err := core.BuildIndex(edges, core.NodeSet(edges))
	require.NoError(err)
	idx := core.NewIndex(edges)

	require.Equal(built.Nodes(), idx.Nodes())
	require.Equal(built.EdgeCount(), idx.EdgeCount())
	require.Equal(built.LoopCount(), idx.LoopCount())
	for _, n := range idx.Nodes() {
		want, err := built.Neighbors(n)
		require.NoError(err)
		got, err := idx.Neighbors(n)
		require.NoError(err)
		require.Equal(want, got, "neighbors of %d", n)
	}
}

func TestEdgeIsLoopAndString(t *testing.T) {
	require.True(t, core.NewEdge(4, 4).IsLoop())
	require.False(t, core.NewEdge(4, 5).IsLoop())
	require.Equal(t, "(4,5)", core.NewEdge(4, 5).String())
}
