package algorithms

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// RmEpsilon implements §4.6.5: replaces every path made entirely of
// epsilon arcs with a single direct arc whose weight is the Plus-sum of
// those epsilon paths' weights, then drops the epsilon arcs themselves.
// For each state s, a local shortest-distance over s's epsilon-only
// out-subgraph gives e(t) for every epsilon-reachable t; every
// non-epsilon arc of such a t is then re-emitted directly from s with
// weight e(t) ⊗ arc.weight, and s's final weight absorbs ⊕ e(t) ⊗
// Final(t).
func RmEpsilon(f fst.Fst) *fst.VectorFst {
	zero := pickZeroFrom(f)
	one := zero.One()
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
		eDist := epsilonClosureDistances(f, s, zero, one)
		final := zero
		for t, e := range eDist {
			final = final.Plus(e.Times(f.Final(t)))
			for ai := f.Arcs(t); !ai.Done(); ai.Next() {
				a := ai.Value()
				if a.ILabel == fst.Epsilon && a.OLabel == fst.Epsilon {
					continue
				}
				out.AddArc(s, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: e.Times(a.Weight), NextState: a.NextState})
			}
		}
		out.SetFinal(s, final)
	}
	return out
}

// epsilonClosureDistances computes e(t) = the Plus-sum of epsilon-path
// weights from s to t, for every t reachable from s via epsilon-only arcs
// (including s itself, with e(s) = one). A plain worklist relaxation,
// bounded by the number of states reachable this way, handles epsilon
// cycles correctly for any idempotent semiring and simply overcounts (adds
// the cycle's weight only until ApproxEqual convergence) otherwise.
func epsilonClosureDistances(f fst.Fst, s fst.StateId, zero, one semiring.Weight) map[fst.StateId]semiring.Weight {
	e := map[fst.StateId]semiring.Weight{s: one}
	queue := []fst.StateId{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		eu := e[u]
		for ai := f.Arcs(u); !ai.Done(); ai.Next() {
			a := ai.Value()
			if a.ILabel != fst.Epsilon || a.OLabel != fst.Epsilon {
				continue
			}
			cand := eu.Times(a.Weight)
			cur, ok := e[a.NextState]
			if !ok {
				cur = zero
			}
			next := cur.Plus(cand)
			if !next.ApproxEqual(cur, 1e-9) {
				e[a.NextState] = next
				queue = append(queue, a.NextState)
			}
		}
	}
	return e
}
