// Package graph holds the adjacency-list representation the BMSSP engine
// reads from. The engine never mutates or owns an Adjacency; it is built
// once by the caller and borrowed for the lifetime of a solve.
package graph

import (
	"fmt"
	"math"
)

// VertexID identifies a vertex. Valid ids are dense in [0, n).
type VertexID int

// Cost is an edge weight or a distance estimate. Costs are always
// finite and non-negative; Inf is the sentinel for "unreached".
type Cost = float64

// Edge is a directed connection to a neighboring vertex.
type Edge struct {
	To     VertexID
	Weight Cost
}

// Adjacency is an ordered adjacency list over a dense vertex id space.
type Adjacency struct {
	Out [][]Edge
}

// New returns an empty Adjacency over n vertices.
func New(n int) *Adjacency {
	return &Adjacency{Out: make([][]Edge, n)}
}

// Len returns the number of vertices, n.
func (a *Adjacency) Len() int {
	return len(a.Out)
}

// AddEdge appends a directed edge from u to v. Edges from the same vertex
// keep the order they were added in; callers relying on property 4
// (order-independence of equal-weight parallel edges) should add those
// edges in whatever order is convenient, since the engine does not rely on
// adjacency order for correctness, only determinism.
func (a *Adjacency) AddEdge(u, v VertexID, w Cost) {
	a.Out[u] = append(a.Out[u], Edge{To: v, Weight: w})
}

// Neighbors returns the outgoing edges of u.
func (a *Adjacency) Neighbors(u VertexID) []Edge {
	return a.Out[u]
}

// Validate checks the input-validation contract of spec §7: every edge
// weight must be finite and non-negative, every edge must reference a
// vertex within range, and source must be in [0, n). It panics on the
// first violation found, matching gonum's DijkstraFrom convention of
// panicking rather than returning an error for contract violations.
func (a *Adjacency) Validate(source VertexID) {
	n := VertexID(a.Len())
	if source < 0 || source >= n {
		panic(fmt.Sprintf("graph: source %d out of range [0, %d)", source, n))
	}
	for u, edges := range a.Out {
		for _, e := range edges {
			if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 1) {
				panic(fmt.Sprintf("graph: edge %d->%d has invalid weight %v (must be finite and non-negative)", u, e.To, e.Weight))
			}
			if e.To < 0 || e.To >= n {
				panic(fmt.Sprintf("graph: edge %d->%d references out-of-range vertex (n=%d)", u, e.To, n))
			}
		}
	}
}

// Inf is the sentinel distance for an unreached vertex.
var Inf = math.Inf(1)
