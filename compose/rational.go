package compose

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// appendCopy copies every state and arc of src into dst, returning the
// offset added to every copied src.StateId to get its id in dst (i.e. a
// src state s lives at dst state s+offset).
func appendCopy(dst *fst.VectorFst, src fst.Fst) fst.StateId {
	offset := fst.StateId(dst.NumStates())
	var order []fst.StateId
	for it := src.States(); !it.Done(); it.Next() {
		order = append(order, it.Value())
	}
	dst.ReserveStates(len(order))
	for range order {
		dst.AddState()
	}
	for _, s := range order {
		dst.SetFinal(s+offset, src.Final(s))
		for ai := src.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			dst.AddArc(s+offset, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: a.NextState + offset})
		}
	}
	return offset
}

// Union builds a VectorFst accepting every string either fst1 or fst2
// accepts: a fresh start state with epsilon arcs to both operands' original
// start states (§4.5's rational-operations engine).
func Union(fst1, fst2 fst.Fst, one semiring.Weight) *fst.VectorFst {
	out := fst.NewVectorFst(one)
	off1 := appendCopy(out, fst1)
	off2 := appendCopy(out, fst2)
	newStart := out.AddState()
	out.SetStart(newStart)
	if s1 := fst1.Start(); s1 != fst.NoStateId {
		out.AddArc(newStart, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one.One(), NextState: s1 + off1})
	}
	if s2 := fst2.Start(); s2 != fst.NoStateId {
		out.AddArc(newStart, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one.One(), NextState: s2 + off2})
	}
	return out
}

// Concat builds a VectorFst accepting every string formed by an fst1-string
// followed by an fst2-string: fst1's final states gain epsilon arcs to
// fst2's start, with fst1's own final weight folded into the transition and
// fst1's states stop being final (except where fst2 itself accepts empty
// input at its own final states, handled naturally since fst2's states
// retain their own final weights).
func Concat(fst1, fst2 fst.Fst, one semiring.Weight) *fst.VectorFst {
	out := fst.NewVectorFst(one)
	off1 := appendCopy(out, fst1)
	off2 := appendCopy(out, fst2)
	if s2 := fst2.Start(); s2 != fst.NoStateId {
		for it := fst1.States(); !it.Done(); it.Next() {
			s := it.Value()
			w := fst1.Final(s)
			if w.ApproxEqual(w.Zero(), 0) {
				continue
			}
			out.AddArc(s+off1, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: w, NextState: s2 + off2})
			out.SetFinal(s+off1, w.Zero())
		}
	}
	if s1 := fst1.Start(); s1 != fst.NoStateId {
		out.SetStart(s1 + off1)
	}
	return out
}

// Closure builds the Kleene closure of f: a fresh hub state with an epsilon
// arc into f's (copied) start, and an epsilon arc from every one of f's
// final states back into the hub so another repetition of f can follow.
// f's own final states keep their original finality, so a path may stop
// after any whole number of repetitions ≥ 1; the hub is additionally made
// final (accepting the empty string) unless plusOnly is set, giving
// zero-or-more (Kleene star) versus one-or-more (Kleene plus) semantics.
func Closure(f fst.Fst, one semiring.Weight, plusOnly bool) *fst.VectorFst {
	out := fst.NewVectorFst(one)
	off := appendCopy(out, f)
	hub := out.AddState()
	out.SetStart(hub)
	if !plusOnly {
		out.SetFinal(hub, one.One())
	}
	if s := f.Start(); s != fst.NoStateId {
		out.AddArc(hub, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: one.One(), NextState: s + off})
	}
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		w := f.Final(s)
		if w.ApproxEqual(w.Zero(), 0) {
			continue
		}
		out.AddArc(s+off, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: w, NextState: hub})
	}
	return out
}
