// ShortestPath implements §4.6.3: given a path semiring, find the n
// shortest paths from Start to any final state. It first computes r(s),
// the shortest distance from s to any final state, via a reverse
// relaxation over f's reverse adjacency (built locally, reusing the same
// generic Plus/Times relaxation ShortestDistance runs forward); it then
// runs a best-first search that always expands the frontier node
// minimizing d(s) ⊗ r(s), the same lazy-decrease-key heap discipline
// dijkstra's nodePQ uses, generalized to an arbitrary path semiring via the
// dominates comparator.
package algorithms

import (
	"container/heap"

	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// spFrame is one frontier node of ShortestPath's best-first search: the Fst
// state it sits at, the accumulated weight of the path from Start, and
// enough of its parent's identity to rebuild the path once completed.
type spFrame struct {
	s      fst.StateId
	d      semiring.Weight
	parent int // index into ShortestPath's completed-frame list; -1 is the root
	arc    fst.Arc
	hasArc bool
}

type spItem struct {
	key   semiring.Weight
	frame spFrame
}

type spHeap struct {
	items []spItem
	less  func(a, b semiring.Weight) bool
}

func (h *spHeap) Len() int           { return len(h.items) }
func (h *spHeap) Less(i, j int) bool { return h.less(h.items[i].key, h.items[j].key) }
func (h *spHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *spHeap) Push(x any)         { h.items = append(h.items, x.(spItem)) }
func (h *spHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// ShortestPath returns a VectorFst containing the n shortest (by weight,
// non-decreasing) paths from f's start state to any final state. When
// n == 1 the result is a single linear chain; for n > 1 it is a tree
// rooted at the result's start state, one branch per completed path. f's
// weight semiring must report semiring.PathProperty, or ErrNotPathSemiring
// is returned.
func ShortestPath(f fst.Fst, n int) (*fst.VectorFst, error) {
	if n < 1 {
		n = 1
	}
	zero := pickZeroFrom(f)
	if zero.Properties()&semiring.PathProperty == 0 {
		return nil, ErrNotPathSemiring
	}
	out := fst.NewVectorFst(zero)
	if f.Start() == fst.NoStateId {
		return out, nil
	}
	one := zero.One()

	reverseDist := reverseShortestDistance(f, zero, one)

	pq := &spHeap{less: dominates}
	heap.Init(pq)
	heap.Push(pq, spItem{key: reverseDist[f.Start()], frame: spFrame{s: f.Start(), d: one, parent: -1}})

	var completedFrames []spFrame
	stateOf := map[int]fst.StateId{-1: out.AddState()}
	out.SetStart(stateOf[-1])
	completed := 0

	for pq.Len() > 0 && completed < n {
		top := heap.Pop(pq).(spItem)
		fr := top.frame
		idx := len(completedFrames)
		completedFrames = append(completedFrames, fr)

		var ns fst.StateId
		if fr.hasArc {
			ns = out.AddState()
		} else {
			ns = stateOf[-1]
		}
		stateOf[idx] = ns
		if parentState, ok := stateOf[fr.parent]; ok && fr.hasArc {
			out.AddArc(parentState, fst.Arc{ILabel: fr.arc.ILabel, OLabel: fr.arc.OLabel, Weight: fr.arc.Weight, NextState: ns})
		}

		finalW := f.Final(fr.s)
		if !finalW.ApproxEqual(finalW.Zero(), 0) {
			out.SetFinal(ns, finalW)
			completed++
		}

		for ai := f.Arcs(fr.s); !ai.Done(); ai.Next() {
			a := ai.Value()
			nd := fr.d.Times(a.Weight)
			heap.Push(pq, spItem{
				key:   nd.Times(reverseDist[a.NextState]),
				frame: spFrame{s: a.NextState, d: nd, parent: idx, arc: a, hasArc: true},
			})
		}
	}
	return out, nil
}

// reverseShortestDistance computes r(s), the shortest distance from every
// state s of f to any final state, by building f's reverse adjacency and
// running the same generic relaxation loop ShortestDistance uses forward,
// seeded from every final state at once (a synthetic super-source, folded
// in directly rather than built as an actual extra state).
func reverseShortestDistance(f fst.Fst, zero, one semiring.Weight) map[fst.StateId]semiring.Weight {
	rev := make(map[fst.StateId][]fst.Arc)
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			rev[a.NextState] = append(rev[a.NextState], fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: s})
		}
	}

	d := make(map[fst.StateId]semiring.Weight)
	r := make(map[fst.StateId]semiring.Weight)
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		d[s] = zero
		r[s] = zero
	}

	pq := &shortestFirstQueue{less: dominates}
	heap.Init(pq)
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		w := f.Final(s)
		if !w.ApproxEqual(w.Zero(), 0) {
			d[s] = w
			r[s] = w
			heap.Push(pq, sdItem{s: s, key: w})
		}
	}

	for pq.Len() > 0 {
		s := heap.Pop(pq).(sdItem).s
		rs := r[s]
		r[s] = zero
		for _, a := range rev[s] {
			t := a.NextState
			cand := d[t].Plus(rs.Times(a.Weight))
			if !cand.ApproxEqual(d[t], 1e-6) {
				d[t] = cand
				r[t] = r[t].Plus(rs.Times(a.Weight))
				heap.Push(pq, sdItem{s: t, key: d[t]})
			}
		}
	}
	return d
}
