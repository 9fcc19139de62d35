package algorithms

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// Reverse implements §4.6.7: builds the transducer accepting the reversed
// relation. A fresh start state gets an epsilon arc to every one of f's
// original final states, carrying that state's final weight run through
// semiring.Weight.Reverse; f's own start state becomes the (sole) final
// state of the result, with final weight one (f's start carried no
// "incoming" weight of its own). Every other arc is inverted (source and
// destination swapped) with its weight mapped by Reverse.
//
// zero is the Zero value of the semiring to build the result over — for a
// weight type whose Reverse lands in a genuinely different semiring (as
// opposed to reusing the same concrete type, e.g. plain TropicalWeight),
// pass that reverse semiring's Zero instead of f's own.
func Reverse(f fst.Fst, zero semiring.Weight) *fst.VectorFst {
	out := fst.NewVectorFst(zero)
	one := zero.One()

	// Map each f state to an out state at the same index, offset by 1 (out
	// state 0 is the synthetic new start).
	n := 0
	for it := f.States(); !it.Done(); it.Next() {
		if int(it.Value())+1 > n {
			n = int(it.Value()) + 1
		}
	}
	out.ReserveStates(n + 1)
	newStart := out.AddState()
	out.SetStart(newStart)
	remap := make([]fst.StateId, n)
	for i := range remap {
		remap[i] = out.AddState()
	}

	if s := f.Start(); s != fst.NoStateId {
		out.SetFinal(remap[s], one)
	}

	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		w := f.Final(s)
		if !w.ApproxEqual(w.Zero(), 0) {
			out.AddArc(newStart, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: w.Reverse(), NextState: remap[s]})
		}
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			out.AddArc(remap[a.NextState], fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight.Reverse(), NextState: remap[s]})
		}
	}
	return out
}
