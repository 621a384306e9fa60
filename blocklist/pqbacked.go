package blocklist

import "container/heap"

// PQBackedList is the priority-queue-backed alternative Block List backing
// of spec §4.5(i): BatchPrepend reduces to repeated insert-or-decrease-key,
// and Pull pops the M smallest. It forgoes the asymptotic advantage of the
// block-bucketed BlockList but is simpler and useful as a correctness
// oracle in tests, matching pq_block_list.rs's role in the Rust source.
type PQBackedList struct {
	m int
	b float64

	pq pqHeap
}

type pqItem struct {
	vertex VertexID
	cost   float64
}

type pqHeap []*pqItem

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pqHeap) Push(x interface{}) { *h = append(*h, x.(*pqItem)) }
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// NewPQBacked constructs an empty priority-queue-backed list.
func NewPQBacked(m int, b float64) *PQBackedList {
	if m < 2 {
		panic("blocklist: M must be >= 2")
	}
	return &PQBackedList{m: m, b: b}
}

func (l *PQBackedList) Len() int     { return l.pq.Len() }
func (l *PQBackedList) IsEmpty() bool { return l.pq.Len() == 0 }

// Insert adds (v, c), decreasing v's key if already present and c is
// strictly smaller, matching BlockList.Insert's no-op-unless-strictly-better
// rule. Heap indices are fixed up by a linear scan, since Go's container/heap
// has no built-in decrease-key: acceptable here because this backing exists
// as a correctness oracle, not a performance-critical path.
func (l *PQBackedList) Insert(v VertexID, c float64) {
	if c > l.b {
		panic("blocklist: inserted cost exceeds bound B")
	}
	for _, it := range l.pq {
		if it.vertex == v {
			if c < it.cost {
				it.cost = c
				heap.Fix(&l.pq, l.indexOf(v))
			}
			return
		}
	}
	heap.Push(&l.pq, &pqItem{vertex: v, cost: c})
}

func (l *PQBackedList) indexOf(v VertexID) int {
	for i, it := range l.pq {
		if it.vertex == v {
			return i
		}
	}
	return -1
}

// BatchPrepend is repeated Insert, per spec §4.5(i).
func (l *PQBackedList) BatchPrepend(pairs []Pair) {
	for _, p := range pairs {
		l.Insert(p.Vertex, p.Cost)
	}
}

// Pull pops the M smallest vertices and reports the next minimum cost or B.
func (l *PQBackedList) Pull() ([]VertexID, float64) {
	n := l.m
	if n > l.pq.Len() {
		n = l.pq.Len()
	}
	out := make([]VertexID, 0, n)
	for i := 0; i < n; i++ {
		item := heap.Pop(&l.pq).(*pqItem)
		out = append(out, item.vertex)
	}
	bound := l.b
	if l.pq.Len() > 0 {
		bound = l.pq[0].cost
	}
	return out, bound
}
