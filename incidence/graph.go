// SPDX-License-Identifier: MIT

package incidence

import "fmt"

// AddDirectedEdge inserts one edge u→v and returns its ID.
//
// Steps:
//  1. Validate u and v against [0, NumVertices()).
//  2. Link the new record to u's current head.
//  3. Make the new record u's head and store v as its destination.
//
// The new ID equals the previous NumEdges(). Nothing is stored on error.
// Complexity: O(1) amortized.
func (g *Graph) AddDirectedEdge(u, v int) (int, error) {
	if err := g.checkVertices(u, v); err != nil {
		return NoEdge, err
	}

	return g.link(u, v), nil
}

// AddUndirectedEdge inserts u→v followed by v→u and returns the ID of u→v;
// v→u receives the next ID. Both endpoints are validated before either record
// is stored.
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(u, v int) (int, error) {
	if err := g.checkVertices(u, v); err != nil {
		return NoEdge, err
	}
	id := g.link(u, v)
	g.link(v, u)

	return id, nil
}

// AddClause encodes the 2-SAT clause (a ∨ b) as the implications ¬a→b and
// ¬b→a, in that order, where ¬x is Negate(x).
//
// All four vertices (a, b, ¬a, ¬b) must be in range; on error no edge is added.
// AddClause(a, a) is legal and stores the self-forcing edge ¬a→a twice.
// Complexity: O(1) amortized.
func (g *Graph) AddClause(a, b int) error {
	notA, notB := Negate(a), Negate(b)
	if err := g.checkVertices(a, b, notA, notB); err != nil {
		return fmt.Errorf("clause (%d ∨ %d): %w", a, b, err)
	}
	g.link(notA, b)
	g.link(notB, a)

	return nil
}

// EdgeTarget returns the destination vertex of edge.
func (g *Graph) EdgeTarget(edge int) (int, error) {
	if edge < 0 || edge >= len(g.edgeToVertex) {
		return 0, fmt.Errorf("%w: edge %d (have %d)", ErrEdgeOutOfRange, edge, len(g.edgeToVertex))
	}

	return g.edgeToVertex[edge], nil
}

// OutDegree returns the number of edges leaving u.
// Complexity: O(out-degree).
func (g *Graph) OutDegree(u int) (int, error) {
	if err := g.checkVertices(u); err != nil {
		return 0, err
	}
	n := 0
	for e := g.vertexToEdge[u]; e != NoEdge; e = g.edgeToEdge[e] {
		n++
	}

	return n, nil
}

// Negate returns the opposite polarity of a 2-SAT literal.
func Negate(literal int) int {
	return literal ^ 1
}

// Literal returns the vertex ID of variable's positive (2·variable) or
// negated (2·variable+1) literal.
func Literal(variable int, negated bool) int {
	if negated {
		return variable<<1 | 1
	}

	return variable << 1
}

// link prepends u→v to u's list. Callers validate u and v first.
func (g *Graph) link(u, v int) int {
	id := len(g.edgeToVertex)
	g.edgeToEdge = append(g.edgeToEdge, g.vertexToEdge[u])
	g.vertexToEdge[u] = id
	g.edgeToVertex = append(g.edgeToVertex, v)
	g.generation++

	return id
}

// checkVertices reports the first ID outside [0, NumVertices()).
func (g *Graph) checkVertices(ids ...int) error {
	n := len(g.vertexToEdge)
	for _, id := range ids {
		if id < 0 || id >= n {
			return fmt.Errorf("%w: vertex %d (have %d)", ErrVertexOutOfRange, id, n)
		}
	}

	return nil
}
