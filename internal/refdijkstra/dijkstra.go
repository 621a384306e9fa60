// Package refdijkstra is a plain Dijkstra implementation used only to
// cross-check BMSSP's output in tests. It is never imported outside the
// module's test files and carries none of BMSSP's bounded-recursion
// machinery.
package refdijkstra

import (
	"container/heap"

	"github.com/halvarsen/bmssp/graph"
)

type item struct {
	vertex graph.VertexID
	dist   float64
	index  int
}

type itemHeap []*item

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *itemHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Solve computes shortest-path distances from source using a textbook
// Dijkstra over a min-heap, for comparison against sssp.Solve's output.
func Solve(adj *graph.Adjacency, source graph.VertexID) []float64 {
	n := adj.Len()
	dist := make([]float64, n)
	items := make([]*item, n)
	for v := range dist {
		dist[v] = graph.Inf
		items[v] = &item{vertex: graph.VertexID(v), dist: graph.Inf, index: v}
	}
	dist[source] = 0
	items[source].dist = 0

	pq := make(itemHeap, len(items))
	copy(pq, items)
	heap.Init(&pq)

	visited := make([]bool, n)
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*item)
		u := it.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range adj.Neighbors(u) {
			alt := dist[u] + e.Weight
			if alt < dist[e.To] {
				dist[e.To] = alt
				items[e.To].dist = alt
				if items[e.To].index >= 0 {
					heap.Fix(&pq, items[e.To].index)
				}
			}
		}
	}
	return dist
}
