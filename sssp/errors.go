package sssp

import (
	"fmt"

	"github.com/halvarsen/bmssp/graph"
)

// boundViolation panics when a distance estimate escapes the bound that is
// supposed to cap it, the kind of internal-invariant violation that
// indicates a bug in the recursion rather than a bad caller input — so it
// panics rather than returning an error, matching graph.Adjacency.Validate's
// convention for contract violations.
func boundViolation(vertex graph.VertexID, dist, bound float64) {
	panic(fmt.Sprintf("sssp: distance %v for vertex %d exceeds bound %v", dist, vertex, bound))
}
