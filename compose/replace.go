package compose

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// Replace builds a single VectorFst by substituting every arc in root whose
// ILabel appears as a key in subs with a copy of the corresponding
// sub-transducer spliced in place: the call arc becomes an epsilon arc into
// the sub's start state (carrying the call arc's own weight), and every
// final state of the sub gains an epsilon arc to the call arc's original
// destination (carrying the sub's final weight, and losing its own
// finality unless it is also the sub's start and root treats the call as
// optional — not modeled here, matching §4.5's non-optional replace). This
// is the rational-operations engine's non-terminal substitution mechanism,
// the same mechanism CFG-style recursive transition networks use to splice
// grammar rules into one flat transducer (`original_source/fst/replace.h`).
func Replace(root fst.Fst, subs map[fst.Label]fst.Fst, one semiring.Weight) *fst.VectorFst {
	out := fst.NewVectorFst(one)
	rootOff := appendCopy(out, root)
	if s := root.Start(); s != fst.NoStateId {
		out.SetStart(s + rootOff)
	}

	// Re-walk root's original arcs (via the source Fst, not the copy — the
	// copy already has the call arcs we are about to replace) to find and
	// splice each call site.
	for it := root.States(); !it.Done(); it.Next() {
		s := it.Value()
		var callArcs []fst.Arc
		var dropIdx []int
		idx := 0
		for ai := root.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			if _, isCall := subs[a.ILabel]; isCall {
				callArcs = append(callArcs, a)
				dropIdx = append(dropIdx, idx)
			}
			idx++
		}
		if len(callArcs) == 0 {
			continue
		}
		// Drop the call arcs from the copied state (by index, matching
		// root's original arc ordering since appendCopy preserves order)
		// and splice in the substitution per call arc.
		out.DeleteArcs(s+rootOff, dropIdx)
		for _, call := range callArcs {
			sub := subs[call.ILabel]
			subOff := appendCopy(out, sub)
			if subStart := sub.Start(); subStart != fst.NoStateId {
				out.AddArc(s+rootOff, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: call.Weight, NextState: subStart + subOff})
			}
			for sit := sub.States(); !sit.Done(); sit.Next() {
				ss := sit.Value()
				w := sub.Final(ss)
				if w.ApproxEqual(w.Zero(), 0) {
					continue
				}
				out.AddArc(ss+subOff, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: w, NextState: call.NextState + rootOff})
				out.SetFinal(ss+subOff, w.Zero())
			}
		}
	}
	return out
}
