package sssp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvarsen/bmssp/graph"
	"github.com/halvarsen/bmssp/internal/refdijkstra"
)

func sampleAdjacency() *graph.Adjacency {
	g := graph.New(11)
	g.AddEdge(0, 1, 0.0)
	g.AddEdge(0, 2, 1.0)
	g.AddEdge(0, 7, 5.0)
	g.AddEdge(1, 3, 3.0)
	g.AddEdge(1, 4, 2.0)
	g.AddEdge(2, 4, 3.0)
	g.AddEdge(2, 5, 2.0)
	g.AddEdge(3, 6, 2.0)
	g.AddEdge(4, 6, 2.0)
	g.AddEdge(6, 8, 3.0)
	g.AddEdge(7, 9, 2.0)
	g.AddEdge(8, 10, 1.0)
	g.AddEdge(9, 10, 2.0)
	return g
}

func TestSolveMatchesWorkedExample(t *testing.T) {
	dist := Solve(sampleAdjacency(), 0)
	require.Equal(t, []graph.Cost{0, 0, 1, 3, 2, 3, 4, 5, 7, 7, 8}, dist)
}

func TestSolveSourceDistanceIsZero(t *testing.T) {
	dist := Solve(sampleAdjacency(), 3)
	require.Zero(t, dist[3])
}

func TestSolveIsIdempotent(t *testing.T) {
	adj := sampleAdjacency()
	first := Solve(adj, 0)
	second := Solve(adj, 0)
	require.Equal(t, first, second)
}

func TestSolveUnreachableVertexStaysAtInfinity(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(0, 1, 1.0)
	dist := Solve(g, 0)
	require.Equal(t, graph.Inf, dist[2])
	require.Equal(t, graph.Inf, dist[3])
}

func TestSolveDistancesAreNonNegative(t *testing.T) {
	dist := Solve(sampleAdjacency(), 0)
	for v, d := range dist {
		if d != graph.Inf {
			require.GreaterOrEqualf(t, d, 0.0, "vertex %d", v)
		}
	}
}

func TestSolveTriangleInequalityHoldsAcrossEveryEdge(t *testing.T) {
	adj := sampleAdjacency()
	dist := Solve(adj, 0)
	for u := 0; u < adj.Len(); u++ {
		for _, e := range adj.Neighbors(graph.VertexID(u)) {
			if dist[u] == graph.Inf {
				continue
			}
			require.LessOrEqualf(t, dist[e.To], dist[u]+e.Weight, "edge %d->%d", u, e.To)
		}
	}
}

func TestSolveOrderIndependenceOfParallelEqualWeightEdges(t *testing.T) {
	a := graph.New(3)
	a.AddEdge(0, 1, 1.0)
	a.AddEdge(0, 2, 1.0)

	b := graph.New(3)
	b.AddEdge(0, 2, 1.0)
	b.AddEdge(0, 1, 1.0)

	require.Equal(t, Solve(a, 0), Solve(b, 0))
}

func TestSolveMatchesReferenceDijkstraOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 20 + rng.Intn(40)
		g := graph.New(n)
		for u := 0; u < n; u++ {
			edges := rng.Intn(5)
			for i := 0; i < edges; i++ {
				v := rng.Intn(n)
				if v == u {
					continue
				}
				g.AddEdge(graph.VertexID(u), graph.VertexID(v), rng.Float64()*10)
			}
		}

		got := Solve(g, 0)
		want := refdijkstra.Solve(g, 0)
		require.InDeltaSlice(t, want, got, 1e-9, "trial %d", trial)
	}
}

func TestSolveSingleVertexGraph(t *testing.T) {
	g := graph.New(1)
	dist := Solve(g, 0)
	require.Equal(t, []graph.Cost{0}, dist)
}

func TestSolvePanicsOnInvalidSource(t *testing.T) {
	g := graph.New(2)
	require.Panics(t, func() { Solve(g, 5) })
}
