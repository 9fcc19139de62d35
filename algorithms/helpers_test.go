package algorithms_test

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// buildChain returns a linear acceptor over labels, each transition costing
// weight w, mirroring package compose's test fixture convention.
func buildChain(labels []fst.Label, w semiring.Weight) *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.SetStart(0)
	for i, l := range labels {
		f.AddState()
		f.AddArc(fst.StateId(i), fst.Arc{ILabel: l, OLabel: l, Weight: w, NextState: fst.StateId(i + 1)})
	}
	f.SetFinal(fst.StateId(len(labels)), semiring.TropicalOne)
	return f
}

func w(v float64) semiring.Weight { return semiring.TropicalWeight(v) }

// epsilonClosure and accepts mirror package compose's test fixtures: plain
// NFA simulation over f, tolerant of the epsilon arcs RmEpsilon/Connect/etc.
// produce or consume.
func epsilonClosure(f fst.Fst, states map[fst.StateId]bool) map[fst.StateId]bool {
	closure := make(map[fst.StateId]bool, len(states))
	var stack []fst.StateId
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			if a.ILabel == fst.Epsilon && a.OLabel == fst.Epsilon && !closure[a.NextState] {
				closure[a.NextState] = true
				stack = append(stack, a.NextState)
			}
		}
	}
	return closure
}

func accepts(f fst.Fst, labels []fst.Label) bool {
	if f.Start() == fst.NoStateId {
		return false
	}
	frontier := epsilonClosure(f, map[fst.StateId]bool{f.Start(): true})
	for _, l := range labels {
		next := map[fst.StateId]bool{}
		for s := range frontier {
			for ai := f.Arcs(s); !ai.Done(); ai.Next() {
				a := ai.Value()
				if a.ILabel == l {
					next[a.NextState] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		frontier = epsilonClosure(f, next)
	}
	for s := range frontier {
		fw := f.Final(s)
		if !fw.ApproxEqual(fw.Zero(), 0) {
			return true
		}
	}
	return false
}
