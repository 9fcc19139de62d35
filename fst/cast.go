package fst

import "github.com/wfstgo/wfst/semiring"

// Cast converts src to a ConstFst, the one target representation in this
// package whose fields are bit-identical in shape to any ExpandedFst
// (final weight + arc window per state) — per §4.2 "two transducer types
// are mutually castable iff their in-memory representations are
// bit-identical for the concerned fields; casting transfers ownership and
// cannot fail at runtime for compatible pairs". Casting into VectorFst or
// CompactFst instead requires type-specific constructors (NewCompactFst)
// since those representations impose extra preconditions (a compatible
// Compactor) that Cast's no-fail contract cannot accommodate generically.
func Cast(src ExpandedFst) *ConstFst {
	if already, ok := src.(*ConstFst); ok {
		return already
	}
	return NewConstFst(src)
}

// ToVectorFst copies any Fst into a fresh, independently-owned VectorFst —
// the concrete representation every MutableFst-requiring algorithm in this
// module materializes its result into when the caller did not supply one.
// zero supplies the semiring (via zero.Zero()) the new VectorFst is built
// over.
func ToVectorFst(src Fst, zero semiring.Weight) *VectorFst {
	out := NewVectorFst(zero)
	idMap := make(map[StateId]StateId)
	var order []StateId
	for it := src.States(); !it.Done(); it.Next() {
		order = append(order, it.Value())
	}
	out.ReserveStates(len(order))
	for _, s := range order {
		idMap[s] = out.AddState()
	}
	for _, s := range order {
		out.SetFinal(idMap[s], src.Final(s))
		for ai := src.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			ns, known := idMap[a.NextState]
			if !known {
				ns = out.AddState()
				idMap[a.NextState] = ns
			}
			out.AddArc(idMap[s], Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: ns})
		}
	}
	if start := src.Start(); start != NoStateId {
		if id, ok := idMap[start]; ok {
			out.SetStart(id)
		}
	}
	out.SetInputSymbols(src.InputSymbols())
	out.SetOutputSymbols(src.OutputSymbols())
	return out
}
