package fst

import "sort"

// ArcSortInput reorders every state's arcs by ascending ILabel, setting the
// ILabelSorted property. Needed by the sorted matcher (package compose) to
// binary-search a state's arcs; ties preserve original relative order
// (stable sort) so arc-iteration order remains otherwise deterministic.
func ArcSortInput(f MutableFst) {
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		sortState(f, s, func(a, b Arc) bool { return a.ILabel < b.ILabel })
	}
	f.Properties(ILabelSortedYes|ILabelSortedNo, true)
}

// ArcSortOutput is ArcSortInput's output-label analogue.
func ArcSortOutput(f MutableFst) {
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		sortState(f, s, func(a, b Arc) bool { return a.OLabel < b.OLabel })
	}
	f.Properties(OLabelSortedYes|OLabelSortedNo, true)
}

func sortState(f MutableFst, s StateId, less func(a, b Arc) bool) {
	n := f.NumArcs(s)
	if n < 2 {
		return
	}
	arcs := make([]Arc, 0, n)
	for ai := f.Arcs(s); !ai.Done(); ai.Next() {
		arcs = append(arcs, ai.Value())
	}
	sort.SliceStable(arcs, func(i, j int) bool { return less(arcs[i], arcs[j]) })
	mai := f.MutableArcIterator(s)
	for i := 0; i < n; i++ {
		mai.SetValue(arcs[i])
		mai.Next()
	}
	mai.Close()
}
