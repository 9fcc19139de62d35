package fst

import (
	"sync"

	"github.com/wfstgo/wfst/semiring"
	"github.com/wfstgo/wfst/symbol"
)

// vectorState holds one state's mutable data: its final weight and its
// growable arc list, plus cached epsilon counts maintained incrementally by
// AddArc/DeleteArcs/MutableArcIterator.SetValue.
type vectorState struct {
	final        semiring.Weight
	arcs         []Arc
	iEpsilons    int
	oEpsilons    int
}

// VectorFst is the general-purpose MutableFst: a growable array of states,
// each holding a growable array of arcs. O(1) amortized AddState/AddArc;
// O(n) DeleteStates/DeleteArcs. Thread-compatible: concurrent reads are
// safe, concurrent mutation is not (§5), matching the teacher's core.Graph
// which instead chooses to pay for an internal RWMutex — VectorFst omits
// that lock deliberately, since algorithms in this module construct a
// private VectorFst per combinator and never share one across goroutines
// during mutation; read-only sharing after construction is safe without
// locking because Go slice/map reads need no synchronization once writes
// have stopped happening-before the reads.
type VectorFst struct {
	start    StateId
	states   []vectorState
	zero     semiring.Weight
	inSyms   *symbol.Table
	outSyms  *symbol.Table
	propsMu  sync.Mutex
	knownBit Properties // which ternary bits have a cached answer
	props    Properties // cached answer bits (Yes/No as appropriate)
}

// NewVectorFst creates an empty VectorFst over the semiring identified by
// zero (zero.Zero() is used whenever a "no weight yet" placeholder is
// needed, e.g. for states with no explicit SetFinal call).
func NewVectorFst(zero semiring.Weight) *VectorFst {
	return &VectorFst{
		start: NoStateId,
		zero:  zero.Zero(),
		props: AcceptorYes | ILabelSortedYes | OLabelSortedYes | WeightedNo | CyclicNo |
			InitialCyclicNo | AccessibleYes | CoAccessibleYes | StringYes |
			IDeterministicYes | ODeterministicYes | NoEpsilonsYes | NoIEpsilonsYes |
			NoOEpsilonsYes | TopSortedYes | UnweightedCyclesNo,
		knownBit: AllTrinary,
	}
}

func (f *VectorFst) Start() StateId { return f.start }

func (f *VectorFst) Final(s StateId) semiring.Weight {
	if s < 0 || int(s) >= len(f.states) || f.states[s].final == nil {
		return f.zero
	}
	return f.states[s].final
}

func (f *VectorFst) NumArcs(s StateId) int {
	if s < 0 || int(s) >= len(f.states) {
		return 0
	}
	return len(f.states[s].arcs)
}

func (f *VectorFst) NumInputEpsilons(s StateId) int {
	if s < 0 || int(s) >= len(f.states) {
		return 0
	}
	return f.states[s].iEpsilons
}

func (f *VectorFst) NumOutputEpsilons(s StateId) int {
	if s < 0 || int(s) >= len(f.states) {
		return 0
	}
	return f.states[s].oEpsilons
}

func (f *VectorFst) NumStates() int { return len(f.states) }

func (f *VectorFst) Type() string { return "vector" }

func (f *VectorFst) InputSymbols() *symbol.Table  { return f.inSyms }
func (f *VectorFst) OutputSymbols() *symbol.Table { return f.outSyms }

func (f *VectorFst) SetInputSymbols(t *symbol.Table)  { f.inSyms = t }
func (f *VectorFst) SetOutputSymbols(t *symbol.Table) { f.outSyms = t }

func (f *VectorFst) AddState() StateId {
	f.states = append(f.states, vectorState{final: f.zero})
	f.invalidate(AddStateProperties)
	return StateId(len(f.states) - 1)
}

func (f *VectorFst) ReserveStates(n int) {
	if cap(f.states)-len(f.states) < n {
		grown := make([]vectorState, len(f.states), len(f.states)+n)
		copy(grown, f.states)
		f.states = grown
	}
}

func (f *VectorFst) ReserveArcs(s StateId, n int) {
	if s < 0 || int(s) >= len(f.states) {
		return
	}
	st := &f.states[s]
	if cap(st.arcs)-len(st.arcs) < n {
		grown := make([]Arc, len(st.arcs), len(st.arcs)+n)
		copy(grown, st.arcs)
		st.arcs = grown
	}
}

func (f *VectorFst) SetStart(s StateId) {
	f.start = s
	f.invalidate(SetStartProperties)
}

func (f *VectorFst) SetFinal(s StateId, w semiring.Weight) {
	if s < 0 || int(s) >= len(f.states) {
		return
	}
	f.states[s].final = w
	f.invalidate(SetFinalProperties)
}

func (f *VectorFst) AddArc(s StateId, a Arc) {
	if s < 0 || int(s) >= len(f.states) {
		return
	}
	st := &f.states[s]
	st.arcs = append(st.arcs, a)
	if a.ILabel == Epsilon {
		st.iEpsilons++
	}
	if a.OLabel == Epsilon {
		st.oEpsilons++
	}
	f.invalidate(AddArcProperties)
}

func (f *VectorFst) DeleteStates(toDelete []StateId) {
	if len(toDelete) == 0 {
		return
	}
	dead := make(map[StateId]bool, len(toDelete))
	for _, s := range toDelete {
		dead[s] = true
	}
	remap := make(map[StateId]StateId, len(f.states))
	kept := make([]vectorState, 0, len(f.states))
	for old := StateId(0); int(old) < len(f.states); old++ {
		if dead[old] {
			continue
		}
		remap[old] = StateId(len(kept))
		kept = append(kept, f.states[old])
	}
	for i := range kept {
		filtered := kept[i].arcs[:0]
		for _, a := range kept[i].arcs {
			if dead[a.NextState] {
				if a.ILabel == Epsilon {
					kept[i].iEpsilons--
				}
				if a.OLabel == Epsilon {
					kept[i].oEpsilons--
				}
				continue
			}
			a.NextState = remap[a.NextState]
			filtered = append(filtered, a)
		}
		kept[i].arcs = filtered
	}
	f.states = kept
	if dead[f.start] {
		f.start = NoStateId
	} else if f.start != NoStateId {
		f.start = remap[f.start]
	}
	f.invalidate(DeleteStatesProperties)
}

func (f *VectorFst) DeleteArcs(s StateId, indices []int) {
	if s < 0 || int(s) >= len(f.states) || len(indices) == 0 {
		return
	}
	dead := make(map[int]bool, len(indices))
	for _, i := range indices {
		dead[i] = true
	}
	st := &f.states[s]
	filtered := st.arcs[:0]
	for i, a := range st.arcs {
		if dead[i] {
			if a.ILabel == Epsilon {
				st.iEpsilons--
			}
			if a.OLabel == Epsilon {
				st.oEpsilons--
			}
			continue
		}
		filtered = append(filtered, a)
	}
	st.arcs = filtered
	f.invalidate(DeleteArcsProperties)
}

func (f *VectorFst) invalidate(keepMask Properties) {
	f.propsMu.Lock()
	defer f.propsMu.Unlock()
	f.knownBit &= keepMask
	f.props &= keepMask
}

func (f *VectorFst) Properties(mask Properties, test bool) Properties {
	f.propsMu.Lock()
	known := f.knownBit & mask
	have := f.props & mask
	f.propsMu.Unlock()
	if !test || known == mask {
		return have
	}
	computed := computeProperties(f)
	f.propsMu.Lock()
	f.props = computed
	f.knownBit = AllTrinary
	f.propsMu.Unlock()
	return computed & mask
}

func (f *VectorFst) Arcs(s StateId) ArcIterator {
	if s < 0 || int(s) >= len(f.states) {
		return &sliceArcIterator{}
	}
	return &sliceArcIterator{arcs: f.states[s].arcs}
}

func (f *VectorFst) States() StateIterator {
	return &rangeStateIterator{n: len(f.states)}
}

func (f *VectorFst) MutableArcIterator(s StateId) MutableArcIterator {
	if s < 0 || int(s) >= len(f.states) {
		return &vectorMutableArcIterator{}
	}
	return &vectorMutableArcIterator{fst: f, s: s}
}

// --- iterators -------------------------------------------------------------

type sliceArcIterator struct {
	arcs []Arc
	pos  int
}

func (it *sliceArcIterator) Done() bool       { return it.pos >= len(it.arcs) }
func (it *sliceArcIterator) Value() Arc       { return it.arcs[it.pos] }
func (it *sliceArcIterator) Next()            { it.pos++ }
func (it *sliceArcIterator) Position() int    { return it.pos }
func (it *sliceArcIterator) Seek(k int)       { it.pos = k }
func (it *sliceArcIterator) Reset()           { it.pos = 0 }
func (it *sliceArcIterator) SetFlags(ArcIteratorFlags, uint8) {}
func (it *sliceArcIterator) Close()           {}

type rangeStateIterator struct {
	n   int
	pos int
}

func (it *rangeStateIterator) Done() bool    { return it.pos >= it.n }
func (it *rangeStateIterator) Value() StateId { return StateId(it.pos) }
func (it *rangeStateIterator) Next()         { it.pos++ }
func (it *rangeStateIterator) Reset()        { it.pos = 0 }

type vectorMutableArcIterator struct {
	fst *VectorFst
	s   StateId
	pos int
}

func (it *vectorMutableArcIterator) arcs() []Arc {
	if it.fst == nil {
		return nil
	}
	return it.fst.states[it.s].arcs
}
func (it *vectorMutableArcIterator) Done() bool    { return it.pos >= len(it.arcs()) }
func (it *vectorMutableArcIterator) Value() Arc    { return it.arcs()[it.pos] }
func (it *vectorMutableArcIterator) Next()         { it.pos++ }
func (it *vectorMutableArcIterator) Position() int { return it.pos }
func (it *vectorMutableArcIterator) Seek(k int)    { it.pos = k }
func (it *vectorMutableArcIterator) Reset()        { it.pos = 0 }
func (it *vectorMutableArcIterator) SetFlags(ArcIteratorFlags, uint8) {}
func (it *vectorMutableArcIterator) Close() {}
func (it *vectorMutableArcIterator) SetValue(a Arc) {
	if it.fst == nil {
		return
	}
	st := &it.fst.states[it.s]
	old := st.arcs[it.pos]
	if old.ILabel == Epsilon {
		st.iEpsilons--
	}
	if old.OLabel == Epsilon {
		st.oEpsilons--
	}
	st.arcs[it.pos] = a
	if a.ILabel == Epsilon {
		st.iEpsilons++
	}
	if a.OLabel == Epsilon {
		st.oEpsilons++
	}
	it.fst.invalidate(AddArcProperties)
}
