// Push implements the weight-pushing half of §4.6.8: reweight every arc
// and final weight so that, for every non-initial state, the Plus-sum of
// outgoing arc weights and the final weight equals One. It is
// shortest-distance followed by a per-state reweight pass
// (`original_source/fst/push.h`). Label pushing — moving label mass
// through the Gallic semiring — is not implemented; §4.6.8 names it but
// nothing in this module needs it yet, and bolting on a half-exercised
// Gallic rewrite pass would be speculative scope the spec does not
// otherwise call for.
package algorithms

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// PushDirection selects which side of the transducer absorbs weight mass.
type PushDirection int

const (
	// PushToInitial moves weight toward the start state: every state's
	// outgoing Plus-sum (arcs plus final weight) becomes One.
	PushToInitial PushDirection = iota
	// PushToFinal is the mirror image, built by running PushToInitial on
	// the reversed transducer and reversing the result back — the
	// outgoing-arc invariant on the reversed graph is exactly the
	// incoming-arc invariant on the original one.
	PushToFinal
)

// Push requires f's weight semiring to implement semiring.Divider;
// ErrNotDivider otherwise.
func Push(f fst.Fst, dir PushDirection) (*fst.VectorFst, error) {
	zero := pickZeroFrom(f)
	if _, ok := zero.(semiring.Divider); !ok {
		return nil, ErrNotDivider
	}

	if dir == PushToInitial {
		return pushToInitial(f, zero)
	}

	rev := Reverse(f, zero)
	pushedRev, err := pushToInitial(rev, zero)
	if err != nil {
		return nil, err
	}
	return Reverse(pushedRev, zero), nil
}

// pushToInitial does the actual reweighting: d(s), computed as the
// reverse shortest distance (distance from s to a final state), satisfies
// the Bellman equation d(s) = Plus over s's outgoing arcs of w(e)*d(next),
// combined with final(s) — so dividing every outgoing weight and the
// final weight by d(s) collapses that very sum to One.
func pushToInitial(f fst.Fst, zero semiring.Weight) (*fst.VectorFst, error) {
	one := zero.One()
	dist := reverseShortestDistance(f, zero, one)

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

	potential := func(s fst.StateId) semiring.Weight {
		w, ok := dist[s]
		if !ok {
			return zero
		}
		return w
	}

	oneDivider, oneIsDivider := one.(semiring.Divider)

	for _, s := range ids {
		ds := potential(s)
		dsInv := one
		haveInv := !ds.ApproxEqual(zero, 0) && oneIsDivider
		if haveInv {
			dsInv = oneDivider.Divide(ds, semiring.DivideLeft)
		}

		final := f.Final(s)
		if haveInv {
			final = dsInv.Times(final)
		}
		out.SetFinal(s, final)

		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			w := a.Weight
			if haveInv {
				w = dsInv.Times(w)
			}
			w = w.Times(potential(a.NextState))
			out.AddArc(s, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: w, NextState: a.NextState})
		}
	}
	return out, nil
}
