// SPDX-License-Identifier: MIT

package incidence

import "fmt"

// AdjacencyIterator is a single-pass cursor over one vertex's outgoing edges,
// newest first. Create a fresh one with Graph.Adjacency to traverse again.
//
// Usage:
//
//	it := g.Adjacency(u)
//	for it.Next() {
//		inc := it.Incidence()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type AdjacencyIterator struct {
	graph      *Graph
	next       int    // edge to yield on the following Next, or NoEdge
	generation uint64 // graph.generation at creation
	cur        Incidence
	err        error
}

// Adjacency returns a cursor over u's outgoing edges.
//
// If u is out of range the cursor is already exhausted and Err reports
// ErrVertexOutOfRange. The cursor borrows g: mutating g before the cursor is
// drained makes Next stop with ErrGraphModified.
// Complexity: O(1) to create, O(out-degree) to drain.
func (g *Graph) Adjacency(u int) *AdjacencyIterator {
	it := &AdjacencyIterator{graph: g, next: NoEdge, generation: g.generation}
	if err := g.checkVertices(u); err != nil {
		it.err = err
		return it
	}
	it.next = g.vertexToEdge[u]

	return it
}

// Next advances to the next incidence and reports whether one is available.
func (it *AdjacencyIterator) Next() bool {
	if it.err != nil || it.next == NoEdge {
		return false
	}
	if it.graph.generation != it.generation {
		it.err = fmt.Errorf("%w: at edge %d", ErrGraphModified, it.next)
		it.next = NoEdge
		return false
	}

	e := it.next
	it.cur = Incidence{Edge: e, Vertex: it.graph.edgeToVertex[e]}
	it.next = it.graph.edgeToEdge[e]

	return true
}

// Incidence returns the pair produced by the last successful Next.
func (it *AdjacencyIterator) Incidence() Incidence {
	return it.cur
}

// Err returns the error that stopped iteration, if any.
func (it *AdjacencyIterator) Err() error {
	return it.err
}

// AdjacencyList drains Adjacency(u) into a slice.
// A vertex without outgoing edges yields an empty, non-nil slice.
func (g *Graph) AdjacencyList(u int) ([]Incidence, error) {
	it := g.Adjacency(u)
	out := make([]Incidence, 0)
	for it.Next() {
		out = append(out, it.Incidence())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
