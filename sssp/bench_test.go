package sssp

import (
	"math/rand"
	"testing"

	"github.com/halvarsen/bmssp/graph"
	"github.com/halvarsen/bmssp/internal/refdijkstra"
)

// generateRandomGraph builds a sparse random directed graph with the given
// vertex and edge counts, weights drawn uniformly from [0, 100).
func generateRandomGraph(rng *rand.Rand, vertices, edges int) *graph.Adjacency {
	g := graph.New(vertices)
	for i := 0; i < edges; i++ {
		u := graph.VertexID(rng.Intn(vertices))
		v := graph.VertexID(rng.Intn(vertices))
		g.AddEdge(u, v, rng.Float64()*100.0)
	}
	return g
}

// BenchmarkSolve runs the full solver across a range of graph sizes.
func BenchmarkSolve(b *testing.B) {
	testCases := []struct {
		name     string
		vertices int
		edges    int
	}{
		{"Small_V1K_E3K", 1000, 3000},
		{"Medium_V5K_E15K", 5000, 15000},
		{"Large_V10K_E30K", 10000, 30000},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			g := generateRandomGraph(rng, tc.vertices, tc.edges)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Solve(g, 0)
			}
		})
	}
}

// BenchmarkSolveDensity holds vertex count fixed and varies edge density.
func BenchmarkSolveDensity(b *testing.B) {
	vertices := 5000
	densities := []struct {
		name       string
		edgeFactor int
	}{
		{"Sparse_2x", 2},
		{"Medium_5x", 5},
		{"Dense_10x", 10},
	}

	rng := rand.New(rand.NewSource(2))
	for _, d := range densities {
		edges := vertices * d.edgeFactor
		b.Run(d.name, func(b *testing.B) {
			g := generateRandomGraph(rng, vertices, edges)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Solve(g, 0)
			}
		})
	}
}

// BenchmarkFindPivots isolates the pivot-finding step (C2) from a singleton
// frontier at the source.
func BenchmarkFindPivots(b *testing.B) {
	vertices, edges := 1000, 3000
	rng := rand.New(rand.NewSource(3))
	g := generateRandomGraph(rng, vertices, edges)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := NewSolver(g)
		s.dist = make(DistanceMap, g.Len())
		for j := range s.dist {
			s.dist[j] = graph.Inf
		}
		s.dist[0] = 0
		b.StartTimer()

		s.findPivots(graph.Inf, []graph.VertexID{0})
	}
}

// BenchmarkBaseCase isolates the bounded mini-Dijkstra base solver (C3).
func BenchmarkBaseCase(b *testing.B) {
	vertices, edges := 200, 600
	rng := rand.New(rand.NewSource(4))
	g := generateRandomGraph(rng, vertices, edges)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := NewSolver(g)
		s.dist = make(DistanceMap, g.Len())
		for j := range s.dist {
			s.dist[j] = graph.Inf
		}
		s.dist[0] = 0
		b.StartTimer()

		s.baseCase(graph.Inf, 0)
	}
}

// BenchmarkComparison compares BMSSP against the plain-Dijkstra reference
// used elsewhere in the test suite as an oracle (spec §8 property 3).
func BenchmarkComparison(b *testing.B) {
	vertices, edges := 10000, 30000
	rng := rand.New(rand.NewSource(5))

	b.Run("BMSSP", func(b *testing.B) {
		g := generateRandomGraph(rng, vertices, edges)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Solve(g, 0)
		}
	})

	b.Run("ReferenceDijkstra", func(b *testing.B) {
		g := generateRandomGraph(rng, vertices, edges)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			refdijkstra.Solve(g, 0)
		}
	})
}
