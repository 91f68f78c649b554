// SPDX-License-Identifier: MIT

package incidence

import "errors"

// NoEdge marks an empty adjacency head or the end of an edge chain.
const NoEdge = -1

// Sentinel errors for incidence graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex ID outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("incidence: vertex out of range")

	// ErrEdgeOutOfRange indicates an edge ID outside [0, NumEdges()).
	ErrEdgeOutOfRange = errors.New("incidence: edge out of range")

	// ErrGraphModified indicates the Graph was mutated while an
	// AdjacencyIterator over it was still in use.
	ErrGraphModified = errors.New("incidence: graph modified during adjacency traversal")
)

// Incidence pairs an edge ID with the destination vertex of that edge.
type Incidence struct {
	// Edge is the stable ID assigned when the edge was inserted.
	Edge int

	// Vertex is the edge's destination.
	Vertex int
}

// Graph is a vertex/edge incidence structure with a fixed vertex count.
//
// The three slices form an intrusive linked list: following vertexToEdge[u]
// through edgeToEdge visits exactly u's outgoing edges, newest first.
// generation increments on every mutation so iterators can detect staleness.
type Graph struct {
	vertexToEdge []int // vertex → head edge or NoEdge
	edgeToEdge   []int // edge → next edge of the same source or NoEdge
	edgeToVertex []int // edge → destination vertex

	generation uint64
}

// New creates a Graph with maxVertices isolated vertices and storage reserved
// for maxEdgesEst edge records.
//
// maxEdgesEst is only a capacity hint: exceeding it reallocates, and a
// negative hint is treated as zero. New panics if maxVertices is negative.
// Complexity: O(maxVertices).
func New(maxVertices, maxEdgesEst int) *Graph {
	if maxEdgesEst < 0 {
		maxEdgesEst = 0
	}
	g := &Graph{
		vertexToEdge: make([]int, maxVertices),
		edgeToEdge:   make([]int, 0, maxEdgesEst),
		edgeToVertex: make([]int, 0, maxEdgesEst),
	}
	for u := range g.vertexToEdge {
		g.vertexToEdge[u] = NoEdge
	}

	return g
}

// NumVertices returns the vertex count fixed at construction.
func (g *Graph) NumVertices() int {
	return len(g.vertexToEdge)
}

// NumEdges returns the number of directed edge records stored.
// Every undirected insertion contributes two.
func (g *Graph) NumEdges() int {
	return len(g.edgeToVertex)
}
