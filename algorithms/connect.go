// Connect trims an Fst to its accessible-and-coaccessible core.
//
// Steps:
//  1. Forward DFS from the start state marks every accessible state.
//  2. Build the reverse adjacency (target -> source arcs) and run a DFS from
//     every final state over it, marking every coaccessible state.
//  3. Copy only states that are both accessible and coaccessible, and only
//     arcs whose source and destination both survive, into a fresh
//     VectorFst.
//
// Time complexity: O(V + E). Memory: O(V + E) for the reverse adjacency.
package algorithms

import (
	"github.com/wfstgo/wfst/fst"
)

// Connect returns a copy of f containing only the states reachable from
// the start state (accessible) from which some final state is reachable
// (coaccessible), per §4.6.1. If f has no start state, the result is
// empty.
func Connect(f fst.Fst) *fst.VectorFst {
	zero := pickZeroFrom(f)
	out := fst.NewVectorFst(zero)
	if f.Start() == fst.NoStateId {
		return out
	}

	accessible := reachForward(f, f.Start())
	coaccessible := reachBackward(f)

	keep := make(map[fst.StateId]bool)
	for s := range accessible {
		if coaccessible[s] {
			keep[s] = true
		}
	}

	remap := make(map[fst.StateId]fst.StateId, len(keep))
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		if keep[s] {
			remap[s] = out.AddState()
		}
	}
	if ns, ok := remap[f.Start()]; ok {
		out.SetStart(ns)
	}
	for s, ns := range remap {
		out.SetFinal(ns, f.Final(s))
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			if nt, ok := remap[a.NextState]; ok {
				out.AddArc(ns, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: nt})
			}
		}
	}
	return out
}

// reachForward returns every state reachable from start via a depth-first
// walk of f's forward arcs.
func reachForward(f fst.Fst, start fst.StateId) map[fst.StateId]bool {
	visited := map[fst.StateId]bool{start: true}
	stack := []fst.StateId{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			t := ai.Value().NextState
			if !visited[t] {
				visited[t] = true
				stack = append(stack, t)
			}
		}
	}
	return visited
}

// reachBackward returns every state from which a final state is reachable,
// via a depth-first walk of the reverse adjacency seeded at every final
// state.
func reachBackward(f fst.Fst) map[fst.StateId]bool {
	rev := make(map[fst.StateId][]fst.StateId)
	var finals []fst.StateId
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		w := f.Final(s)
		if !w.ApproxEqual(w.Zero(), 0) {
			finals = append(finals, s)
		}
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			t := ai.Value().NextState
			rev[t] = append(rev[t], s)
		}
	}

	visited := make(map[fst.StateId]bool, len(finals))
	var stack []fst.StateId
	for _, s := range finals {
		if !visited[s] {
			visited[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !visited[p] {
				visited[p] = true
				stack = append(stack, p)
			}
		}
	}
	return visited
}
