package sssp

import "github.com/halvarsen/bmssp/graph"

// findPivots implements Algorithm 1: it relaxes edges outward from frontier
// for up to k layers, bounded by B, then identifies which frontier vertices
// are roots of shortest-path-forest subtrees of size >= k. Those roots are
// the pivots passed down to the next recursion level; every vertex touched
// during the k layers (pivots or not) is returned as w, the set the caller
// may need to fold back into its own result.
func (s *Solver) findPivots(bound float64, frontier []graph.VertexID) (pivots, w []graph.VertexID) {
	inW := make(map[graph.VertexID]bool, len(frontier))
	w = make([]graph.VertexID, 0, len(frontier))
	for _, x := range frontier {
		inW[x] = true
		w = append(w, x)
	}

	parent := make(map[graph.VertexID]graph.VertexID)
	layer := append([]graph.VertexID(nil), frontier...)

	for i := 1; i <= s.k; i++ {
		var next []graph.VertexID
		for _, u := range layer {
			for _, e := range s.adj.Neighbors(u) {
				cand := s.dist[u] + e.Weight
				if cand <= s.dist[e.To] {
					s.dist[e.To] = cand
					if cand < bound && !inW[e.To] {
						inW[e.To] = true
						w = append(w, e.To)
						next = append(next, e.To)
						parent[e.To] = u
					}
				}
			}
		}
		if len(w) > s.k*len(frontier) {
			// Too much work for this level; the whole frontier becomes the
			// pivot set, so the caller seeds its Block List with all of it.
			return append([]graph.VertexID(nil), frontier...), w
		}
		layer = next
	}

	return s.rootsOfLargeSubtrees(frontier, layer, parent), w
}

// rootsOfLargeSubtrees walks each vertex of the final relaxation layer (Wk,
// per spec §4.2 — "walk from each layer-k leaf back to its root") up its
// parent chain to the frontier root that discovered it, counting the size
// of the rooted subtree along the way. A vertex already assigned to a root
// short-circuits the walk for every vertex downstream of it, so each edge
// of the parent forest is traversed at most once across all calls.
func (s *Solver) rootsOfLargeSubtrees(frontier, lastLayer []graph.VertexID, parent map[graph.VertexID]graph.VertexID) []graph.VertexID {
	subtreeSize := make(map[graph.VertexID]int)
	rootOf := make(map[graph.VertexID]graph.VertexID)

	for _, leaf := range lastLayer {
		root, branchLen := walkToRoot(leaf, parent, rootOf)
		subtreeSize[root] += branchLen
	}

	var pivots []graph.VertexID
	for _, r := range frontier {
		if subtreeSize[r] >= s.k {
			pivots = append(pivots, r)
		}
	}
	return pivots
}

// walkToRoot follows parent pointers from leaf up to its frontier root,
// memoizing every node it passes through so later calls that hit an
// already-assigned node can stop immediately instead of re-walking the
// chain. It returns the root and the number of previously-unassigned nodes
// on this walk, which is this leaf's contribution to the root's subtree size.
func walkToRoot(leaf graph.VertexID, parent, rootOf map[graph.VertexID]graph.VertexID) (root graph.VertexID, branchLen int) {
	cur := leaf
	var branch []graph.VertexID
	for {
		if r, assigned := rootOf[cur]; assigned {
			root = r
			break
		}
		branch = append(branch, cur)
		next, ok := parent[cur]
		if !ok {
			root = cur
			break
		}
		cur = next
	}
	for _, node := range branch {
		rootOf[node] = root
	}
	return root, len(branch)
}
