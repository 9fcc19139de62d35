// Determinize implements §4.6.4's weighted subset construction, wired to
// handle both acceptors and general transducers. determinizeCore runs the
// subset construction directly over an acceptor (ILabel == OLabel on every
// arc); Determinize itself dispatches to it directly when f already is one,
// and otherwise routes f through EncodeMapper first (packing (ILabel,
// OLabel) into one integer label, per §4.6.4's "determinization is
// performed in the Gallic semiring... then factored back") and Decode
// afterward. A transducer whose output is not a function of its input alone
// cannot be made input-deterministic by this sandwich — relabeling never
// merges two arcs that disagree on OLabel — so the result's
// IDeterministicYes property is checked before returning it, and
// ErrNotOutputDeterministic is reported rather than silently handing back an
// Fst with more than one arc per (state, ILabel).
package algorithms

import (
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// DefaultSubsequentialLabel is the reserved input label Determinize uses,
// per spec.md's subsequential-label mechanism, to carry a subset's residual
// final weight onward to a dedicated superfinal state when that subset both
// has non-Zero final weight and real out-transitions on other labels,
// rather than marking the subset itself final while it still continues.
// Chosen distinct from Epsilon (0) and NoLabel (-1) and from any label
// EncodeMapper ever assigns (which starts at 1 and only grows).
const DefaultSubsequentialLabel fst.Label = -2

// DeterminizeOptions configures Determinize.
type DeterminizeOptions struct {
	// SubsequentialLabel is the reserved label used for residual-final-weight
	// flush arcs (see DefaultSubsequentialLabel). fst.NoLabel disables the
	// mechanism: a subset with both final weight and out-arcs is then just
	// marked final directly, which is exact for a plain weighted acceptor
	// but not for a transducer later composed against on its input side.
	SubsequentialLabel fst.Label
}

// DeterminizeOption is a functional option for Determinize.
type DeterminizeOption func(*DeterminizeOptions)

// DefaultDeterminizeOptions enables the subsequential-label mechanism with
// DefaultSubsequentialLabel.
func DefaultDeterminizeOptions() DeterminizeOptions {
	return DeterminizeOptions{SubsequentialLabel: DefaultSubsequentialLabel}
}

// WithSubsequentialLabel overrides the reserved flush label, or disables the
// mechanism entirely when passed fst.NoLabel.
func WithSubsequentialLabel(l fst.Label) DeterminizeOption {
	return func(o *DeterminizeOptions) { o.SubsequentialLabel = l }
}

type subsetMember struct {
	state  fst.StateId
	weight semiring.Weight
}

// Determinize requires f's weight semiring to implement semiring.Divider
// (needed to factor out each new subset's common divisor, per §4.6.4
// step 3); ErrNotDivider otherwise.
func Determinize(f fst.Fst, opts ...DeterminizeOption) (*fst.VectorFst, error) {
	cfg := DefaultDeterminizeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if f.Properties(fst.AcceptorYes, true)&fst.AcceptorYes != 0 {
		return determinizeCore(f, cfg)
	}

	// EncodeWeights is left off: the encoded symbol identity must be
	// (ILabel, OLabel) alone so arcs that only differ by weight still merge
	// during the subset construction exactly as plain acceptor
	// determinization merges them, via Plus, not via distinct labels.
	mapper := NewEncodeMapper(false)
	encoded := Encode(f, mapper)
	det, err := determinizeCore(encoded, cfg)
	if err != nil {
		return nil, err
	}
	out := Decode(det, mapper)
	if out.Properties(fst.IDeterministicYes, true)&fst.IDeterministicYes == 0 {
		return nil, ErrNotOutputDeterministic
	}
	return out, nil
}

// determinizeCore runs the subset construction directly; exact when f is an
// acceptor (every arc's ILabel == OLabel), which holds both for a genuine
// input acceptor and for Encode's output.
func determinizeCore(f fst.Fst, cfg DeterminizeOptions) (*fst.VectorFst, error) {
	zero := pickZeroFrom(f)
	if _, ok := zero.(semiring.Divider); !ok {
		return nil, ErrNotDivider
	}
	one := zero.One()
	out := fst.NewVectorFst(zero)
	if f.Start() == fst.NoStateId {
		return out, nil
	}

	startSubset := []subsetMember{{state: f.Start(), weight: one}}
	signatures := make(map[string]fst.StateId)
	var queue [][]subsetMember

	sig := subsetSignature(startSubset)
	startId := out.AddState()
	signatures[sig] = startId
	out.SetStart(startId)
	queue = append(queue, startSubset)

	var superfinal fst.StateId = fst.NoStateId
	ensureSuperfinal := func() fst.StateId {
		if superfinal == fst.NoStateId {
			superfinal = out.AddState()
			out.SetFinal(superfinal, one)
		}
		return superfinal
	}

	for len(queue) > 0 {
		subset := queue[0]
		queue = queue[1:]
		thisId := signatures[subsetSignature(subset)]

		final := zero
		byLabel := make(map[fst.Label][]subsetMember)
		for _, m := range subset {
			final = final.Plus(m.weight.Times(f.Final(m.state)))
			for ai := f.Arcs(m.state); !ai.Done(); ai.Next() {
				a := ai.Value()
				byLabel[a.ILabel] = append(byLabel[a.ILabel], subsetMember{state: a.NextState, weight: m.weight.Times(a.Weight)})
			}
		}

		labels := make([]fst.Label, 0, len(byLabel))
		for l := range byLabel {
			labels = append(labels, l)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

		switch {
		case !final.ApproxEqual(zero, 0) && len(labels) > 0 && cfg.SubsequentialLabel != fst.NoLabel:
			// Spec's subsequential-label mechanism: this subset is both
			// final and still continuing, so the residual final weight is
			// flushed via a dedicated arc rather than left on a state that
			// also has real out-transitions.
			sf := ensureSuperfinal()
			out.AddArc(thisId, fst.Arc{ILabel: cfg.SubsequentialLabel, OLabel: cfg.SubsequentialLabel, Weight: final, NextState: sf})
		default:
			out.SetFinal(thisId, final)
		}

		for _, l := range labels {
			raw := byLabel[l]
			combined := make(map[fst.StateId]semiring.Weight)
			var order []fst.StateId
			for _, m := range raw {
				if _, ok := combined[m.state]; !ok {
					order = append(order, m.state)
					combined[m.state] = zero
				}
				combined[m.state] = combined[m.state].Plus(m.weight)
			}

			divisor := zero
			for _, s := range order {
				divisor = divisor.Plus(combined[s])
			}
			if _, ok := divisor.(semiring.Divider); !ok {
				return nil, pkgerrors.Wrap(ErrNotDivider, "determinize: new subset's divisor is not a Divider")
			}

			newSubset := make([]subsetMember, 0, len(order))
			for _, s := range order {
				residual := combined[s].(semiring.Divider).Divide(divisor, semiring.DivideRight)
				newSubset = append(newSubset, subsetMember{state: s, weight: residual})
			}
			sort.Slice(newSubset, func(i, j int) bool { return newSubset[i].state < newSubset[j].state })

			nsig := subsetSignature(newSubset)
			nid, seen := signatures[nsig]
			if !seen {
				nid = out.AddState()
				signatures[nsig] = nid
				queue = append(queue, newSubset)
			}
			out.AddArc(thisId, fst.Arc{ILabel: l, OLabel: l, Weight: divisor, NextState: nid})
		}
	}
	return out, nil
}

// subsetSignature renders a canonical string key for a (already
// state-sorted, duplicate-free) subset, used to dedup subset states via a
// plain map rather than package cache's structural-hash table — Determinize
// builds its result eagerly in one pass, so it has no need for cache's
// pinning/eviction machinery.
func subsetSignature(subset []subsetMember) string {
	var b strings.Builder
	for _, m := range subset {
		b.WriteString(strconv.FormatInt(int64(m.state), 10))
		b.WriteByte(':')
		b.WriteString(m.weight.String())
		b.WriteByte(';')
	}
	return b.String()
}
