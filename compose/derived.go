package compose

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// Intersect intersects two unweighted acceptors (every arc's ILabel equals
// its OLabel): it is ordinary Compose with MatchFilter, which only allows
// a1/a2 pairs whose non-epsilon labels agree. No epsilon arc of either
// operand is followed, so the result is the language intersection only for
// epsilon-free acceptors; a string whose path in either operand needs an
// epsilon arc is absent from the result (§4.5.1,
// `original_source/fst/intersect.h`).
func Intersect(fst1, fst2 fst.Fst) (*fst.VectorFst, error) {
	return Compose(fst1, fst2, WithFilter(NewMatchFilter()))
}

// Complement builds the acceptor over alphabet that accepts exactly the
// strings f rejects. f is assumed deterministic on alphabet (at most one
// outgoing arc per state per label); Complement completes it with a single
// trap state absorbing every alphabet symbol f has no transition for, then
// swaps each state's finality (§4.5.1, `original_source/fst/complement.h`).
// Only the accept/reject distinction (state finality) is complemented — arc
// and final weights on the surviving states are copied through unchanged,
// so Complement is meaningful only over unweighted acceptors (every final
// weight is either one.Zero() or one.One(), e.g. a TropicalWeight acceptor
// with every final weight 0), not general weighted acceptors.
func Complement(f fst.Fst, alphabet []fst.Label, one semiring.Weight) *fst.VectorFst {
	out := fst.NewVectorFst(one)
	off := appendCopy(out, f)
	trap := out.AddState()
	out.SetFinal(trap, one.One())
	for _, l := range alphabet {
		out.AddArc(trap, fst.Arc{ILabel: l, OLabel: l, Weight: one.One(), NextState: trap})
	}

	if s := f.Start(); s != fst.NoStateId {
		out.SetStart(s + off)
	} else {
		out.SetStart(trap)
	}

	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		present := make(map[fst.Label]bool, len(alphabet))
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			present[ai.Value().ILabel] = true
		}
		for _, l := range alphabet {
			if !present[l] {
				out.AddArc(s+off, fst.Arc{ILabel: l, OLabel: l, Weight: one.One(), NextState: trap})
			}
		}
		w := f.Final(s)
		if w.ApproxEqual(w.Zero(), 0) {
			out.SetFinal(s+off, one.One())
		} else {
			out.SetFinal(s+off, w.Zero())
		}
	}
	return out
}

// Difference builds the set of strings fst1 accepts and fst2 rejects:
// Intersect(fst1, Complement(fst2, alphabet)) (§4.5.1). alphabet must cover
// every label fst1 can emit, or strings using an absent label will
// incorrectly fail to match the complement's trap-completion.
func Difference(fst1, fst2 fst.Fst, alphabet []fst.Label, one semiring.Weight) (*fst.VectorFst, error) {
	comp := Complement(fst2, alphabet, one)
	return Intersect(fst1, comp)
}
