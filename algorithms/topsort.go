// TopSort implements §4.6.6 via a DFS finish-order walk, adapted from the
// teacher's depth-first traversal (recursive visit, parent/visited
// bookkeeping) but iterative here (an explicit stack) so a long chain
// cannot overflow the Go call stack, and extended with the three-color
// (white/gray/black) scheme needed to detect a back edge — a cycle — which
// the teacher's DFS, built for acyclic traversal bookkeeping only, never
// had to check for.
package algorithms

import "github.com/wfstgo/wfst/fst"

const (
	white = 0
	gray  = 1
	black = 2
)

// TopSort returns a copy of f with states renumbered so that every arc
// goes from a lower id to a higher id, or ErrCyclic if f contains a cycle
// (f is left unexamined for mutation either way — TopSort never mutates
// its input).
func TopSort(f fst.Fst) (*fst.VectorFst, error) {
	color := make(map[fst.StateId]int)
	var order []fst.StateId // finish order, reversed gives topological order

	type frame struct {
		s      fst.StateId
		arcPos int
		arcs   []fst.Arc
	}
	var stack []*frame

	for it := f.States(); !it.Done(); it.Next() {
		root := it.Value()
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack = append(stack, &frame{s: root, arcs: collectArcs(f, root)})

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.arcPos >= len(top.arcs) {
				color[top.s] = black
				order = append(order, top.s)
				stack = stack[:len(stack)-1]
				continue
			}
			a := top.arcs[top.arcPos]
			top.arcPos++
			switch color[a.NextState] {
			case white:
				color[a.NextState] = gray
				stack = append(stack, &frame{s: a.NextState, arcs: collectArcs(f, a.NextState)})
			case gray:
				return nil, ErrCyclic
			}
		}
	}

	// order is in DFS finish order; reversing it gives a valid topological
	// order (every arc's source finishes after its destination).
	rank := make(map[fst.StateId]fst.StateId, len(order))
	for i, s := range order {
		rank[s] = fst.StateId(len(order) - 1 - i)
	}

	out := fst.NewVectorFst(pickZeroFrom(f))
	out.ReserveStates(len(order))
	for range order {
		out.AddState()
	}
	for s, ns := range rank {
		out.SetFinal(ns, f.Final(s))
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			out.AddArc(ns, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: rank[a.NextState]})
		}
	}
	if f.Start() != fst.NoStateId {
		out.SetStart(rank[f.Start()])
	}
	return out, nil
}

func collectArcs(f fst.Fst, s fst.StateId) []fst.Arc {
	var arcs []fst.Arc
	for ai := f.Arcs(s); !ai.Done(); ai.Next() {
		arcs = append(arcs, ai.Value())
	}
	return arcs
}
