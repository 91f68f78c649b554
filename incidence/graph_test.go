// SPDX-License-Identifier: MIT

package incidence_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linkgraph/incidence"
)

// Common sizes used across incidence tests.
const (
	NVertices  = 10
	NEdgesHint = 15
)

// insertion is one step of the reference build.
type insertion struct {
	U, V       int
	Undirected bool
}

// referenceEdges alternates directed and undirected insertions:
// 0→1, 0–2, 1→3, 4–8, 5→6, 5–7.
var referenceEdges = []insertion{
	{0, 1, false}, {0, 2, true},
	{1, 3, false}, {4, 8, true},
	{5, 6, false}, {5, 7, true},
}

// GraphSuite runs every test against a freshly built reference graph.
type GraphSuite struct {
	suite.Suite
	g *incidence.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = incidence.New(NVertices, NEdgesHint)
	for _, e := range referenceEdges {
		var err error
		if e.Undirected {
			_, err = s.g.AddUndirectedEdge(e.U, e.V)
		} else {
			_, err = s.g.AddDirectedEdge(e.U, e.V)
		}
		require.NoError(s.T(), err)
	}
}

// TestCounts: 3 directed + 3 undirected insertions → 9 edge records.
func (s *GraphSuite) TestCounts() {
	require.Equal(s.T(), NVertices, s.g.NumVertices())
	require.Equal(s.T(), 9, s.g.NumEdges())
}

// TestAdjacencyOfZero: newest first, edge 1 → 2 then edge 0 → 1.
func (s *GraphSuite) TestAdjacencyOfZero() {
	adj, err := s.g.AdjacencyList(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []incidence.Incidence{{Edge: 1, Vertex: 2}, {Edge: 0, Vertex: 1}}, adj)
}

// TestAdjacencyOfOthers pins the mirror records created by undirected inserts.
func (s *GraphSuite) TestAdjacencyOfOthers() {
	cases := map[int][]incidence.Incidence{
		1: {{Edge: 3, Vertex: 3}},
		2: {{Edge: 2, Vertex: 0}},
		4: {{Edge: 4, Vertex: 8}},
		5: {{Edge: 7, Vertex: 7}, {Edge: 6, Vertex: 6}},
		7: {{Edge: 8, Vertex: 5}},
		8: {{Edge: 5, Vertex: 4}},
	}
	for u, want := range cases {
		got, err := s.g.AdjacencyList(u)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, got, "adjacency of %d", u)
	}
}

// TestEmptyAdjacency: vertices without outgoing edges yield nothing.
func (s *GraphSuite) TestEmptyAdjacency() {
	for _, u := range []int{3, 6, 9} {
		it := s.g.Adjacency(u)
		require.False(s.T(), it.Next())
		require.NoError(s.T(), it.Err())

		adj, err := s.g.AdjacencyList(u)
		require.NoError(s.T(), err)
		require.Empty(s.T(), adj)
	}
}

// TestEdgeTargetConsistency: every enumerated pair agrees with EdgeTarget,
// and every edge is enumerated exactly once.
func (s *GraphSuite) TestEdgeTargetConsistency() {
	seen := make(map[int]bool)
	for u := 0; u < s.g.NumVertices(); u++ {
		it := s.g.Adjacency(u)
		for it.Next() {
			inc := it.Incidence()
			v, err := s.g.EdgeTarget(inc.Edge)
			require.NoError(s.T(), err)
			require.Equal(s.T(), v, inc.Vertex)
			require.False(s.T(), seen[inc.Edge], "edge %d enumerated twice", inc.Edge)
			seen[inc.Edge] = true
		}
		require.NoError(s.T(), it.Err())
	}
	require.Len(s.T(), seen, s.g.NumEdges())
}

// TestOutDegree mirrors the adjacency lengths.
func (s *GraphSuite) TestOutDegree() {
	want := []int{2, 1, 1, 0, 1, 2, 0, 1, 1, 0}
	for u, d := range want {
		got, err := s.g.OutDegree(u)
		require.NoError(s.T(), err)
		require.Equal(s.T(), d, got, "out-degree of %d", u)
	}
}

// TestIteratorIsSinglePass: a drained cursor stays drained.
func (s *GraphSuite) TestIteratorIsSinglePass() {
	it := s.g.Adjacency(0)
	n := 0
	for it.Next() {
		n++
	}
	require.Equal(s.T(), 2, n)
	require.False(s.T(), it.Next())
	require.NoError(s.T(), it.Err())
}

// TestStaleIterator: a mutation while a cursor is live stops it.
func (s *GraphSuite) TestStaleIterator() {
	it := s.g.Adjacency(0)
	require.True(s.T(), it.Next())
	require.Equal(s.T(), incidence.Incidence{Edge: 1, Vertex: 2}, it.Incidence())

	_, err := s.g.AddDirectedEdge(0, 9)
	require.NoError(s.T(), err)

	require.False(s.T(), it.Next())
	require.ErrorIs(s.T(), it.Err(), incidence.ErrGraphModified)

	fresh, err := s.g.AdjacencyList(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []incidence.Incidence{{Edge: 9, Vertex: 9}, {Edge: 1, Vertex: 2}, {Edge: 0, Vertex: 1}}, fresh)
}

// TestRejectedInsertDoesNotInvalidate: failed mutations leave cursors usable.
func (s *GraphSuite) TestRejectedInsertDoesNotInvalidate() {
	it := s.g.Adjacency(5)
	_, err := s.g.AddDirectedEdge(5, NVertices)
	require.ErrorIs(s.T(), err, incidence.ErrVertexOutOfRange)

	n := 0
	for it.Next() {
		n++
	}
	require.NoError(s.T(), it.Err())
	require.Equal(s.T(), 2, n)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestAddDirectedEdge_IDsAndCount(t *testing.T) {
	g := incidence.New(4, 0)
	for k := 0; k < 8; k++ {
		id, err := g.AddDirectedEdge(k%4, (k+1)%4)
		require.NoError(t, err)
		require.Equal(t, k, id, "edge IDs are assigned in insertion order")
		require.Equal(t, k+1, g.NumEdges())
	}
}

func TestAddUndirectedEdge_TwoRecords(t *testing.T) {
	g := incidence.New(3, 0)
	_, err := g.AddDirectedEdge(0, 1)
	require.NoError(t, err)

	id, err := g.AddUndirectedEdge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, id)
	require.Equal(t, 3, g.NumEdges())

	fwd, err := g.EdgeTarget(1)
	require.NoError(t, err)
	require.Equal(t, 2, fwd)
	back, err := g.EdgeTarget(2)
	require.NoError(t, err)
	require.Equal(t, 1, back)
}

func TestAddSelfLoop(t *testing.T) {
	g := incidence.New(2, 0)
	_, err := g.AddUndirectedEdge(1, 1)
	require.NoError(t, err)

	adj, err := g.AdjacencyList(1)
	require.NoError(t, err)
	require.Equal(t, []incidence.Incidence{{Edge: 1, Vertex: 1}, {Edge: 0, Vertex: 1}}, adj)
}

func TestOutOfRange(t *testing.T) {
	g := incidence.New(NVertices, 0)

	_, err := g.AddDirectedEdge(NVertices, 0)
	require.ErrorIs(t, err, incidence.ErrVertexOutOfRange)
	_, err = g.AddDirectedEdge(0, NVertices)
	require.ErrorIs(t, err, incidence.ErrVertexOutOfRange, "destination is validated too")
	_, err = g.AddDirectedEdge(-1, 0)
	require.ErrorIs(t, err, incidence.ErrVertexOutOfRange)
	_, err = g.AddUndirectedEdge(0, NVertices)
	require.ErrorIs(t, err, incidence.ErrVertexOutOfRange)
	require.Zero(t, g.NumEdges(), "rejected inserts store nothing")

	_, err = g.AdjacencyList(NVertices)
	require.ErrorIs(t, err, incidence.ErrVertexOutOfRange)
	it := g.Adjacency(-1)
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), incidence.ErrVertexOutOfRange)

	_, err = g.OutDegree(NVertices)
	require.ErrorIs(t, err, incidence.ErrVertexOutOfRange)
	_, err = g.EdgeTarget(0)
	require.ErrorIs(t, err, incidence.ErrEdgeOutOfRange)
}

func TestNew_Hints(t *testing.T) {
	g := incidence.New(0, -5)
	require.Zero(t, g.NumVertices())
	require.Zero(t, g.NumEdges())

	// Exceeding the hint grows storage instead of failing.
	g = incidence.New(2, 1)
	for i := 0; i < 100; i++ {
		_, err := g.AddDirectedEdge(0, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 100, g.NumEdges())

	require.Panics(t, func() { incidence.New(-1, 0) })
}
