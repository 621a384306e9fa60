package blocklist

import "sort"

// TreeBackedList is the ordered-map-backed alternative Block List backing of
// spec §4.5(ii): entries are kept in a single slice sorted by orderedCost,
// giving Pull an O(M) prefix slice and Insert an O(log n) search plus O(n)
// shift. No library in the retrieved corpus offers a B-tree or ordered-map
// container, so this backing is built directly on a sorted slice (sort.Search
// for position, slice insert/delete for mutation) rather than on an
// imported balanced-tree type.
type TreeBackedList struct {
	m int
	b float64

	entries []treeEntry
	at      map[VertexID]float64
}

type treeEntry struct {
	vertex VertexID
	order  orderedCost
}

// NewTreeBacked constructs an empty ordered-map-backed list.
func NewTreeBacked(m int, b float64) *TreeBackedList {
	if m < 2 {
		panic("blocklist: M must be >= 2")
	}
	return &TreeBackedList{m: m, b: b, at: make(map[VertexID]float64)}
}

func (l *TreeBackedList) Len() int      { return len(l.entries) }
func (l *TreeBackedList) IsEmpty() bool { return len(l.entries) == 0 }

func (l *TreeBackedList) search(o orderedCost) int {
	return sort.Search(len(l.entries), func(i int) bool { return !l.entries[i].order.less(o) })
}

// Insert adds (v, c), replacing any existing strictly-worse entry for v.
func (l *TreeBackedList) Insert(v VertexID, c float64) {
	if c > l.b {
		panic("blocklist: inserted cost exceeds bound B")
	}
	if old, ok := l.at[v]; ok {
		if c >= old {
			return
		}
		l.remove(v, old)
	}
	l.at[v] = c
	o := newOrderedCost(c)
	idx := l.search(o)
	l.entries = append(l.entries, treeEntry{})
	copy(l.entries[idx+1:], l.entries[idx:])
	l.entries[idx] = treeEntry{vertex: v, order: o}
}

func (l *TreeBackedList) remove(v VertexID, cost float64) {
	o := newOrderedCost(cost)
	idx := l.search(o)
	for idx < len(l.entries) && l.entries[idx].vertex != v {
		idx++
	}
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
}

// BatchPrepend is repeated Insert, per spec §4.5(ii): the sorted slice
// naturally places cheaper prepended entries ahead of costlier resident
// ones without a separate prepend sequence.
func (l *TreeBackedList) BatchPrepend(pairs []Pair) {
	for _, p := range pairs {
		l.Insert(p.Vertex, p.Cost)
	}
}

// Pull removes and returns the M cheapest vertices, with the next bound.
func (l *TreeBackedList) Pull() ([]VertexID, float64) {
	n := l.m
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]VertexID, n)
	for i := 0; i < n; i++ {
		out[i] = l.entries[i].vertex
		delete(l.at, l.entries[i].vertex)
	}
	l.entries = l.entries[n:]

	bound := l.b
	if len(l.entries) > 0 {
		bound = l.entries[0].order.float64()
	}
	return out, bound
}
