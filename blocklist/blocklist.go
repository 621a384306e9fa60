// Package blocklist implements the bounded, batched priority structure of
// spec §4.1 (the "Block List", Lemma 3.3 of Duan-Mao-Mao-Shu-Yin 2025) and
// the two conforming alternative backings of spec §4.5.
//
// A BlockList holds a multiset of (vertex, cost) pairs partitioned into two
// ordered sequences of blocks: a prepend sequence D0 (items known, by
// caller contract, to dominate everything currently in the list) and an
// insert sequence D1 (items added by ordinary Insert, kept sorted by block
// upper bound). Pull drains the M globally cheapest items across both
// sequences and reports the next bound.
package blocklist

import (
	"fmt"
	"sort"

	"github.com/halvarsen/bmssp/graph"
)

// VertexID identifies a vertex stored in the list. It is an alias for
// graph.VertexID so that the slices Pull hands back can be passed directly
// to sssp's recursion without a conversion pass.
type VertexID = graph.VertexID

// Pair is a (vertex, cost) entry, the unit BatchPrepend and Pull traffic in.
type Pair struct {
	Vertex VertexID
	Cost   float64
}

// block is a bounded cluster of entries sharing an upper bound. Entries are
// kept unsorted between operations and only sorted on demand (split, pull),
// mirroring the Rust source's "sort when needed" approach rather than
// maintaining a sorted invariant on every insert.
type block struct {
	entries    []Pair
	upperBound float64
}

func newBlock(capacity int, upperBound float64) *block {
	return &block{entries: make([]Pair, 0, capacity), upperBound: upperBound}
}

func (b *block) sortByCost() {
	sort.Slice(b.entries, func(i, j int) bool { return b.entries[i].Cost < b.entries[j].Cost })
}

func (b *block) removeVertex(v VertexID) bool {
	for i := range b.entries {
		if b.entries[i].Vertex == v {
			b.entries[i] = b.entries[len(b.entries)-1]
			b.entries = b.entries[:len(b.entries)-1]
			return true
		}
	}
	return false
}

// location records which sequence a live vertex occupies and at what cost,
// so Insert/BatchPrepend can answer "is this strictly better?" in O(1)
// without searching the blocks.
type location struct {
	prepend bool // true: D0, false: D1
	cost    float64
}

// BlockList is the primary Block List backing (spec §4.1).
type BlockList struct {
	m int     // block capacity / pull quantum
	b float64 // list-global strict upper bound

	d0 []*block // prepend sequence, front holds the cheapest block
	d1 []*block // insert sequence, ascending upper bound; last block's bound is always b

	at map[VertexID]location
}

// New constructs an empty BlockList with capacity m and bound b. D1 starts
// with a single empty block whose upper bound is b; this sentinel block is
// never removed by Pull, even when drained empty (spec §9's "cycle
// avoidance" rule) — Insert relies on D1 never being empty.
func New(m int, b float64) *BlockList {
	if m < 2 {
		panic(fmt.Sprintf("blocklist: M must be >= 2, got %d", m))
	}
	return &BlockList{
		m:  m,
		b:  b,
		d1: []*block{newBlock(m, b)},
		at: make(map[VertexID]location),
	}
}

// Len returns the number of live (vertex, cost) entries.
func (l *BlockList) Len() int { return len(l.at) }

// IsEmpty reports whether the list holds no entries.
func (l *BlockList) IsEmpty() bool { return len(l.at) == 0 }

// MinimumBound returns the smallest cost currently present, or B if empty.
func (l *BlockList) MinimumBound() float64 {
	min := l.b
	if bl := l.d0FrontBlock(); bl != nil {
		min = minEntry(bl, min)
	}
	if bl := l.d1FrontNonEmpty(); bl != nil {
		min = minEntry(bl, min)
	}
	return min
}

func minEntry(b *block, fallback float64) float64 {
	if len(b.entries) == 0 {
		return fallback
	}
	m := b.entries[0].Cost
	for _, e := range b.entries[1:] {
		if e.Cost < m {
			m = e.Cost
		}
	}
	if m < fallback {
		return m
	}
	return fallback
}

func (l *BlockList) d0FrontBlock() *block {
	if len(l.d0) == 0 {
		return nil
	}
	return l.d0[0]
}

func (l *BlockList) d1FrontNonEmpty() *block {
	for _, bl := range l.d1 {
		if len(bl.entries) > 0 {
			return bl
		}
	}
	return nil
}

// update applies the "only if strictly improving" rule shared by Insert and
// BatchPrepend: if v is already present at cost <= the new cost, this is a
// no-op (returns false). Otherwise the stale entry is removed from whichever
// sequence held it and true is returned, meaning the caller should proceed
// to (re)insert v at the new cost.
func (l *BlockList) update(v VertexID, cost float64) bool {
	loc, ok := l.at[v]
	if !ok {
		return true
	}
	if cost >= loc.cost {
		return false
	}
	if loc.prepend {
		l.removeFromPrepend(v, loc.cost)
	} else {
		l.removeFromInsert(v, loc.cost)
	}
	return true
}

func (l *BlockList) removeFromPrepend(v VertexID, cost float64) {
	idx := sort.Search(len(l.d0), func(i int) bool { return l.d0[i].upperBound >= cost })
	// An entry whose cost equals a block's upper bound may live in the next
	// block, so keep scanning until the vertex is found.
	for idx < len(l.d0) && !l.d0[idx].removeVertex(v) {
		idx++
	}
	if idx == len(l.d0) {
		panic(fmt.Sprintf("blocklist: vertex %d not found in D0 at cost %v", v, cost))
	}
	bl := l.d0[idx]
	if len(bl.entries) == 0 {
		if idx > 0 {
			l.d0[idx-1].upperBound = bl.upperBound
		}
		l.d0 = append(l.d0[:idx], l.d0[idx+1:]...)
	}
}

func (l *BlockList) removeFromInsert(v VertexID, cost float64) {
	idx := sort.Search(len(l.d1), func(i int) bool { return l.d1[i].upperBound >= cost })
	for idx < len(l.d1) && !l.d1[idx].removeVertex(v) {
		idx++
	}
	if idx == len(l.d1) {
		panic(fmt.Sprintf("blocklist: vertex %d not found in D1 at cost %v", v, cost))
	}
	bl := l.d1[idx]
	if len(bl.entries) == 0 && idx != len(l.d1)-1 {
		// The trailing D1 block is a sentinel (spec §9) and is never
		// dropped, even when empty: insert relies on D1 always having at
		// least one block to binary-search into.
		if idx > 0 {
			l.d1[idx-1].upperBound = bl.upperBound
		}
		l.d1 = append(l.d1[:idx], l.d1[idx+1:]...)
	}
}

// Insert adds (v, c), replacing any existing strictly-worse entry for v.
// Precondition: c <= B.
func (l *BlockList) Insert(v VertexID, c float64) {
	if c > l.b {
		panic(fmt.Sprintf("blocklist: inserted cost %v exceeds bound B=%v", c, l.b))
	}
	if !l.update(v, c) {
		return
	}
	l.at[v] = location{prepend: false, cost: c}

	idx := sort.Search(len(l.d1), func(i int) bool { return l.d1[i].upperBound >= c })
	target := l.d1[idx]
	target.entries = append(target.entries, Pair{Vertex: v, Cost: c})
	if len(target.entries) > l.m {
		l.splitInsertBlock(idx)
	}
}

// splitInsertBlock splits an overflowed D1 block in two: the cheaper
// ceil((M+1)/2) entries form a new left block whose upper bound is the
// minimum cost of the right half, and the rest stay in the original block
// (keeping its upper bound).
func (l *BlockList) splitInsertBlock(idx int) {
	bl := l.d1[idx]
	bl.sortByCost()

	leftSize := (len(bl.entries) + 1) / 2 // ceil((M+1)/2) with M+1 == len(bl.entries)
	left := newBlock(l.m, bl.entries[leftSize].Cost)
	left.entries = append(left.entries, bl.entries[:leftSize]...)

	right := newBlock(l.m, bl.upperBound)
	right.entries = append(right.entries, bl.entries[leftSize:]...)

	l.d1[idx] = left
	l.d1 = append(l.d1, nil)
	copy(l.d1[idx+2:], l.d1[idx+1:])
	l.d1[idx+1] = right
}

// BatchPrepend adds pairs known (by caller contract) to be strictly
// cheaper than every value currently in the list. Surviving entries (after
// the same strictly-improving update rule as Insert) are pushed onto the
// front of D0 as one block if there are at most M of them, or chunked into
// several front blocks of size ceil(M/2) if there are more.
func (l *BlockList) BatchPrepend(pairs []Pair) {
	surviving := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if l.update(p.Vertex, p.Cost) {
			surviving = append(surviving, p)
			l.at[p.Vertex] = location{prepend: true, cost: p.Cost}
		}
	}
	if len(surviving) == 0 {
		return
	}

	if len(surviving) <= l.m {
		ub := l.MinimumBound()
		bl := newBlock(l.m, ub)
		bl.entries = append(bl.entries, surviving...)
		l.d0 = append([]*block{bl}, l.d0...)
		return
	}

	// Sort descending and repeatedly drain the costliest remaining chunk,
	// pushing each new block to the very front of D0: the last (cheapest)
	// chunk drained ends up at the front, preserving D0's ascending order.
	sort.Slice(surviving, func(i, j int) bool { return surviving[i].Cost > surviving[j].Cost })
	chunk := (l.m + 1) / 2 // ceil(M/2)
	for len(surviving) > 0 {
		take := chunk
		if take > len(surviving) {
			take = len(surviving)
		}
		group := surviving[:take]
		surviving = surviving[take:]

		ub := l.MinimumBound()
		bl := newBlock(l.m, ub)
		bl.entries = append(bl.entries, group...)
		l.d0 = append([]*block{bl}, l.d0...)
	}
}

// Pull removes and returns at most M vertices of smallest cost across the
// whole list, together with the new bound: the smallest cost remaining, or
// B if the list is now empty.
func (l *BlockList) Pull() ([]VertexID, float64) {
	var out []VertexID
	for len(out) < l.m {
		got := l.pullElements(l.m - len(out))
		if len(got) == 0 {
			break
		}
		out = append(out, got...)
	}
	return out, l.MinimumBound()
}

// pullElements draws up to n vertices, scanning D0 then D1, sorting each
// touched block by cost and merging the two candidate streams by cost.
func (l *BlockList) pullElements(n int) []VertexID {
	prepCandidates := l.collectCandidates(l.d0, n)
	insCandidates := l.collectCandidates(l.d1, n)

	out := make([]VertexID, 0, n)
	pi, ii := 0, 0
	for len(out) < n && (pi < len(prepCandidates) || ii < len(insCandidates)) {
		var fromPrepend bool
		switch {
		case pi >= len(prepCandidates):
			fromPrepend = false
		case ii >= len(insCandidates):
			fromPrepend = true
		default:
			fromPrepend = prepCandidates[pi].Cost < insCandidates[ii].Cost
		}

		var chosen Pair
		if fromPrepend {
			chosen = prepCandidates[pi]
			pi++
			l.removeFromPrepend(chosen.Vertex, chosen.Cost)
		} else {
			chosen = insCandidates[ii]
			ii++
			l.removeFromInsert(chosen.Vertex, chosen.Cost)
		}
		delete(l.at, chosen.Vertex)
		out = append(out, chosen.Vertex)
	}
	return out
}

// collectCandidates walks seq front-to-back, sorting each block by cost and
// taking up to n entries from it, stopping once n entries have been
// gathered across the blocks touched so far.
func (l *BlockList) collectCandidates(seq []*block, n int) []Pair {
	out := make([]Pair, 0, n)
	for _, bl := range seq {
		if len(out) >= n {
			break
		}
		bl.sortByCost()
		take := n - len(out)
		if take > len(bl.entries) {
			take = len(bl.entries)
		}
		out = append(out, bl.entries[:take]...)
	}
	return out
}
