// Package sssp implements the BMSSP (Bounded Multi-Source Shortest Path)
// engine of Duan, Mao, Mao, Shu, and Yin, "Breaking the Sorting Barrier for
// Directed Single-Source Shortest Paths" (arXiv:2504.17033). It computes
// single-source shortest-path distances over a non-negative-weight directed
// graph without sorting the full frontier at every step, using the Block
// List of package blocklist as its bounded, batched priority structure.
package sssp

import (
	"math"

	"github.com/halvarsen/bmssp/graph"
)

// DistanceMap holds the current distance estimate for every vertex, indexed
// by graph.VertexID. Unreached vertices hold graph.Inf.
type DistanceMap = []graph.Cost

// Solver holds the mutable state of one BMSSP run: the borrowed adjacency,
// the live distance estimates, and the derived recursion parameters k and t.
// A Solver is single-use — construct one per Run call via NewSolver.
type Solver struct {
	adj  *graph.Adjacency
	dist DistanceMap

	k int // max(2, floor((log2 n)^(1/3))): pivot-count / base-case-size threshold
	t int // floor((log2 n)^(2/3)): per-level recursion shrink factor
}

// NewSolver derives k and t from the vertex count of adj and returns a
// Solver ready to run from any source in adj.
func NewSolver(adj *graph.Adjacency) *Solver {
	n := float64(adj.Len())
	logN := math.Log2(n)

	k := int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 2 {
		k = 2
	}

	t := int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	return &Solver{
		adj: adj,
		k:   k,
		t:   t,
	}
}

// Run computes shortest-path distances from source over the Solver's
// adjacency and returns the resulting DistanceMap. It validates the graph
// first, per spec §7's input-validation contract.
func (s *Solver) Run(source graph.VertexID) DistanceMap {
	s.adj.Validate(source)

	s.dist = make(DistanceMap, s.adj.Len())
	for i := range s.dist {
		s.dist[i] = graph.Inf
	}
	s.dist[source] = 0

	n := float64(s.adj.Len())
	l := int(math.Ceil(math.Log2(n) / float64(s.t)))
	if l < 0 {
		l = 0
	}

	s.bmssp(l, graph.Inf, []graph.VertexID{source})
	return s.dist
}

// Solve is a convenience entry point: it constructs a Solver for adj,
// derives k and t, and returns the distance from source to every vertex.
func Solve(adj *graph.Adjacency, source graph.VertexID) DistanceMap {
	return NewSolver(adj).Run(source)
}
