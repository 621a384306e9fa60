package sssp

import (
	"container/heap"

	"github.com/halvarsen/bmssp/graph"
)

// pqItem is a (vertex, priority) entry in the base-case's internal
// mini-Dijkstra heap. Stale entries (a vertex popped at a priority greater
// than its current best distance) are simply skipped rather than removed,
// the usual lazy-deletion pattern for a heap without decrease-key.
type pqItem struct {
	vertex   graph.VertexID
	priority float64
}

type pqItemHeap []pqItem

func (h pqItemHeap) Len() int            { return len(h) }
func (h pqItemHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h pqItemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pqItemHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pqItemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// baseCase implements Algorithm 2: a bounded mini-Dijkstra run from a
// singleton frontier, stopping as soon as the closed set U grows past k
// (deliberately k, not k-1: the loop admits the (k+1)th vertex before
// checking, per spec §3's off-by-one). If U stays at size <= k, the bound B
// is returned unchanged; otherwise B' is trimmed to the largest distance in
// U and U is filtered down to the vertices strictly under it.
func (s *Solver) baseCase(bound float64, source graph.VertexID) (float64, []graph.VertexID) {
	closed := make(map[graph.VertexID]bool)
	closed[source] = true

	h := &pqItemHeap{{vertex: source, priority: s.dist[source]}}
	heap.Init(h)

	for h.Len() > 0 && len(closed) <= s.k {
		item := heap.Pop(h).(pqItem)
		u := item.vertex
		if item.priority > s.dist[u] {
			continue
		}
		closed[u] = true

		for _, e := range s.adj.Neighbors(u) {
			cand := s.dist[u] + e.Weight
			if cand <= s.dist[e.To] && cand < bound {
				s.dist[e.To] = cand
				heap.Push(h, pqItem{vertex: e.To, priority: cand})
			}
		}
	}

	out := make([]graph.VertexID, 0, len(closed))
	for v := range closed {
		out = append(out, v)
	}
	if len(closed) <= s.k {
		return bound, out
	}

	maxDist := 0.0
	for v := range closed {
		if s.dist[v] > maxDist {
			maxDist = s.dist[v]
		}
	}

	trimmed := out[:0]
	for _, v := range out {
		if s.dist[v] < maxDist {
			trimmed = append(trimmed, v)
		}
	}
	return maxDist, trimmed
}
