// ArcMap and StateMap are the generic per-arc / per-state transform
// primitives `original_source/fst/arc-map.h` names: most of this package's
// simpler operations (Invert, Project, Relabel, and weight-semiring
// conversions like tropical-to-log) are one-line ArcMapFn values passed
// through ArcMap rather than bespoke traversals.
package algorithms

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// ArcMapFn transforms one arc; the returned arc's NextState must be
// unchanged from the input (ArcMap only rewrites label/weight fields) —
// renumbering states is StateMap's job, not ArcMap's.
type ArcMapFn func(fst.Arc) fst.Arc

// ArcMap applies fn to every arc of f, copying state structure unchanged,
// and returns the result as a fresh VectorFst.
func ArcMap(f fst.Fst, fn ArcMapFn) *fst.VectorFst {
	zero := pickZeroFrom(f)
	out := fst.NewVectorFst(zero)
	var ids []fst.StateId
	for it := f.States(); !it.Done(); it.Next() {
		ids = append(ids, it.Value())
	}
	out.ReserveStates(len(ids))
	for range ids {
		out.AddState()
	}
	if f.Start() != fst.NoStateId {
		out.SetStart(f.Start())
	}
	for _, s := range ids {
		out.SetFinal(s, f.Final(s))
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			out.AddArc(s, fn(ai.Value()))
		}
	}
	return out
}

// StateMapFn transforms a state's final weight.
type StateMapFn func(w semiring.Weight) semiring.Weight

// StateMap applies fn to every state's final weight, leaving arcs (and
// which states are final at all — fn is only consulted for states that
// were already final) unchanged.
func StateMap(f fst.Fst, fn StateMapFn) *fst.VectorFst {
	return ArcMapStates(f, fn)
}

// ArcMapStates is StateMap's implementation, exported under its own name;
// ArcMap does not use it.
func ArcMapStates(f fst.Fst, fn StateMapFn) *fst.VectorFst {
	zero := pickZeroFrom(f)
	out := fst.NewVectorFst(zero)
	var ids []fst.StateId
	for it := f.States(); !it.Done(); it.Next() {
		ids = append(ids, it.Value())
	}
	out.ReserveStates(len(ids))
	for range ids {
		out.AddState()
	}
	if f.Start() != fst.NoStateId {
		out.SetStart(f.Start())
	}
	for _, s := range ids {
		w := f.Final(s)
		if !w.ApproxEqual(w.Zero(), 0) {
			w = fn(w)
		}
		out.SetFinal(s, w)
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			out.AddArc(s, ai.Value())
		}
	}
	return out
}
