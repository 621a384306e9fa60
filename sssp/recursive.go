package sssp

import (
	"github.com/halvarsen/bmssp/blocklist"
	"github.com/halvarsen/bmssp/graph"
)

// bmssp implements Algorithm 3, the bounded recursive step. At l == 0 it
// bottoms out in baseCase on the singleton frontier. Otherwise it finds
// pivots, seeds a Block List sized for this level (capacity M_l =
// 2^(t*(l-1))), and repeatedly pulls the cheapest batch, recurses one level
// down, relaxes the batch's outgoing edges, and stages survivors for the
// next pull — stopping once the closed set U reaches k*2^(t*l) or the Block
// List runs dry.
func (s *Solver) bmssp(l int, bound float64, frontier []graph.VertexID) (float64, []graph.VertexID) {
	if l == 0 {
		return s.baseCase(bound, frontier[0])
	}

	pivots, w := s.findPivots(bound, frontier)
	if len(pivots) == 0 {
		return s.collectBelowBound(bound, w, nil)
	}

	blockCap := 1 << uint((l-1)*s.t)
	if blockCap < 2 {
		blockCap = 2 // Block List requires M >= 2
	}
	closedLimit := s.k << uint(l*s.t)

	list := blocklist.New(blockCap, bound)
	minBound := bound
	for _, p := range pivots {
		d := s.dist[p]
		if d > bound {
			boundViolation(p, d, bound)
		}
		list.Insert(p, d)
		if d < minBound {
			minBound = d
		}
	}

	closed := make(map[graph.VertexID]bool)
	for !list.IsEmpty() && len(closed) < closedLimit {
		batch, batchBound := list.Pull()
		subBound, sub := s.recurse(l-1, batchBound, batch)
		minBound = subBound

		var staged []blocklist.Pair
		for _, u := range sub {
			closed[u] = true
			for _, e := range s.adj.Neighbors(u) {
				cand := s.dist[u] + e.Weight
				if cand <= s.dist[e.To] {
					s.dist[e.To] = cand
					switch {
					case cand >= batchBound && cand < bound:
						list.Insert(e.To, cand)
					case cand >= subBound && cand < batchBound:
						staged = append(staged, blocklist.Pair{Vertex: e.To, Cost: cand})
					}
				}
			}
		}
		for _, v := range batch {
			d := s.dist[v]
			if d >= subBound && d < batchBound {
				staged = append(staged, blocklist.Pair{Vertex: v, Cost: d})
			}
		}
		if len(staged) > 0 {
			list.BatchPrepend(staged)
		}
	}

	return s.collectBelowBound(minBound, w, mapKeys(closed))
}

// recurse dispatches to bmssp, with one accommodation: the base solver (l ==
// 0) is defined over a singleton frontier, but a Block List's capacity is
// bounded below at 2 (spec §4.1) even at the level where the derived
// formula M_l would call for 1. When that happens, a pull can hand back two
// vertices for a level-0 call; recurse runs the base case once per vertex
// and merges the results, taking the smaller of the two trimmed bounds so
// neither sub-run's progress is overstated to the caller.
func (s *Solver) recurse(l int, bound float64, frontier []graph.VertexID) (float64, []graph.VertexID) {
	if l > 0 || len(frontier) <= 1 {
		return s.bmssp(l, bound, frontier)
	}

	minB := bound
	var merged []graph.VertexID
	for _, v := range frontier {
		b, u := s.baseCase(bound, v)
		if b < minB {
			minB = b
		}
		merged = append(merged, u...)
	}
	return minB, merged
}

// collectBelowBound folds w (vertices touched during pivot-finding but not
// yet in the closed set) into u, keeping only those whose distance is
// strictly under limit, then returns limit paired with the combined set.
func (s *Solver) collectBelowBound(limit float64, w, u []graph.VertexID) (float64, []graph.VertexID) {
	in := make(map[graph.VertexID]bool, len(u))
	out := append([]graph.VertexID(nil), u...)
	for _, v := range u {
		in[v] = true
	}
	for _, v := range w {
		if s.dist[v] < limit && !in[v] {
			in[v] = true
			out = append(out, v)
		}
	}
	return limit, out
}

func mapKeys(m map[graph.VertexID]bool) []graph.VertexID {
	out := make([]graph.VertexID, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	return out
}
