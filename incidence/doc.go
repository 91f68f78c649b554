// SPDX-License-Identifier: MIT

// Package incidence provides a compact graph over dense integer vertex IDs,
// stored as an incidence list: every vertex's outgoing edges form a singly
// linked list threaded through flat, edge-indexed slices.
//
// Storage
//
//	vertexToEdge[u] — most recently added edge leaving u, or NoEdge.
//	edgeToEdge[e]   — next edge in the same source's list, or NoEdge.
//	edgeToVertex[e] — destination vertex of edge e.
//
// Edge IDs are assigned 0, 1, 2, … in insertion order and never change; edges
// are never removed. Because insertion prepends to the source's list, adjacency
// enumeration yields the most recently inserted edge first.
//
// Core methods
//
//	New(maxVertices, maxEdgesEst int) *Graph       // O(V); maxEdgesEst is a capacity hint
//	NumVertices() int, NumEdges() int              // O(1)
//	AddDirectedEdge(u, v int) (edgeID int, err)    // O(1) amortized
//	AddUndirectedEdge(u, v int) (edgeID int, err)  // two directed records, u→v then v→u
//	AddClause(a, b int) error                      // 2-SAT: ¬a→b, ¬b→a
//	Adjacency(u int) *AdjacencyIterator            // O(out-degree) lazy cursor
//	AdjacencyList(u int) ([]Incidence, error)      // drained cursor
//
// 2-SAT literals
//
//	Each boolean variable x owns two adjacent vertex IDs, 2x (x) and 2x+1 (¬x),
//	so literal^1 is its negation. AddClause(a, b) encodes the clause (a ∨ b)
//	as the implications ¬a→b and ¬b→a. Solving (SCC condensation) is left to
//	consumers of the Graph.
//
// Validation
//
//	All mutations check every endpoint against [0, NumVertices()) before
//	touching storage and fail with ErrVertexOutOfRange, so no dangling
//	destination can ever be stored and multi-edge insertions are all-or-nothing.
//
// Concurrency
//
//	Graph is not safe for concurrent use. An AdjacencyIterator borrows the
//	Graph: any mutation after the iterator is created makes its next Next()
//	stop with ErrGraphModified instead of walking half-updated lists.
package incidence
