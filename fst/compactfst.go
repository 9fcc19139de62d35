package fst

import (
	"github.com/wfstgo/wfst/semiring"
	"github.com/wfstgo/wfst/symbol"
)

// Compactor encodes/decodes one arc (and optionally a state's final weight)
// to and from a fixed representation Element, for a CompactFst whose arcs
// all share enough structure that storing full Arc values is wasteful
// (§4.2). Compatible reports whether this compactor can faithfully
// round-trip every state/arc of src (e.g. a string compactor requires every
// arc to be an acceptor arc).
type Compactor interface {
	Compact(s StateId, a Arc) Element
	Expand(s StateId, e Element, flags ArcIteratorFlags) Arc
	Compatible(src ExpandedFst) bool
	Name() string
}

// Element is the fixed-size encoded form a Compactor produces. It is left
// as an opaque `any` rather than a fixed struct because different
// compactors legitimately need different element shapes (a label+weight
// pair vs. a label-only unweighted entry); CompactFst never interprets
// Element itself, only the Compactor does.
type Element any

// StringCompactor encodes (ilabel, weight) pairs for acceptor-shaped FSTs
// where olabel always equals ilabel — the common "string FSA" case named
// in §4.2.
type StringCompactor struct{ zero semiring.Weight }

// NewStringCompactor returns a StringCompactor for the given semiring.
func NewStringCompactor(zero semiring.Weight) *StringCompactor {
	return &StringCompactor{zero: zero.Zero()}
}

type stringElement struct {
	label  Label
	weight semiring.Weight
}

func (c *StringCompactor) Compact(_ StateId, a Arc) Element {
	return stringElement{label: a.ILabel, weight: a.Weight}
}

func (c *StringCompactor) Expand(_ StateId, e Element, _ ArcIteratorFlags) Arc {
	se := e.(stringElement)
	return Arc{ILabel: se.label, OLabel: se.label, Weight: se.weight, NextState: NoStateId}
}

func (c *StringCompactor) Compatible(src ExpandedFst) bool {
	p := src.Properties(AcceptorYes|AcceptorNo, true)
	return p&AcceptorYes != 0
}

func (c *StringCompactor) Name() string { return "string" }

// UnweightedAcceptorCompactor encodes only the label of an unweighted
// acceptor arc, for the maximally compact case (plain automata).
type UnweightedAcceptorCompactor struct{ one semiring.Weight }

func NewUnweightedAcceptorCompactor(one semiring.Weight) *UnweightedAcceptorCompactor {
	return &UnweightedAcceptorCompactor{one: one.One()}
}

func (c *UnweightedAcceptorCompactor) Compact(_ StateId, a Arc) Element { return a.ILabel }
func (c *UnweightedAcceptorCompactor) Expand(_ StateId, e Element, _ ArcIteratorFlags) Arc {
	l := e.(Label)
	return Arc{ILabel: l, OLabel: l, Weight: c.one, NextState: NoStateId}
}
func (c *UnweightedAcceptorCompactor) Compatible(src ExpandedFst) bool {
	p := src.Properties(AcceptorYes|AcceptorNo|WeightedYes|WeightedNo, true)
	return p&AcceptorYes != 0 && p&WeightedNo != 0
}
func (c *UnweightedAcceptorCompactor) Name() string { return "unweighted_acceptor" }

// CompactFst stores states as (final, offset, count) windows, same as
// ConstFst, but arcs as Compactor-encoded Elements instead of full Arc
// values; each arc's NextState is stored in the nextState slice, parallel
// to elements, since neither compactor encodes it.
type CompactFst struct {
	start     StateId
	states    []constState
	elements  []Element
	nextState []StateId
	compactor Compactor
	zero      semiring.Weight
	inSyms    *symbol.Table
	outSyms   *symbol.Table
	props     Properties
}

// NewCompactFst builds a CompactFst from src using compactor, which must
// report Compatible(src); callers failing that check should fall back to
// ConstFst.
func NewCompactFst(src ExpandedFst, compactor Compactor) *CompactFst {
	n := src.NumStates()
	cf := &CompactFst{
		start:     src.Start(),
		states:    make([]constState, n),
		compactor: compactor,
		inSyms:    src.InputSymbols(),
		outSyms:   src.OutputSymbols(),
	}
	if n > 0 {
		cf.zero = src.Final(0).Zero()
	} else {
		cf.zero = semiring.TropicalZero
	}
	for s := 0; s < n; s++ {
		sid := StateId(s)
		offset := len(cf.elements)
		count := 0
		ie, oe := 0, 0
		for ai := src.Arcs(sid); !ai.Done(); ai.Next() {
			a := ai.Value()
			cf.elements = append(cf.elements, compactor.Compact(sid, a))
			cf.nextState = append(cf.nextState, a.NextState)
			count++
			if a.ILabel == Epsilon {
				ie++
			}
			if a.OLabel == Epsilon {
				oe++
			}
		}
		cf.states[s] = constState{final: src.Final(sid), offset: offset, count: count, iEpsilons: ie, oEpsilons: oe}
	}
	cf.props = src.Properties(AllTrinary, true)
	return cf
}

func (f *CompactFst) Start() StateId { return f.start }
func (f *CompactFst) Final(s StateId) semiring.Weight {
	if s < 0 || int(s) >= len(f.states) {
		return f.zero
	}
	return f.states[s].final
}
func (f *CompactFst) NumArcs(s StateId) int {
	if s < 0 || int(s) >= len(f.states) {
		return 0
	}
	return f.states[s].count
}
func (f *CompactFst) NumInputEpsilons(s StateId) int {
	if s < 0 || int(s) >= len(f.states) {
		return 0
	}
	return f.states[s].iEpsilons
}
func (f *CompactFst) NumOutputEpsilons(s StateId) int {
	if s < 0 || int(s) >= len(f.states) {
		return 0
	}
	return f.states[s].oEpsilons
}
func (f *CompactFst) NumStates() int { return len(f.states) }
func (f *CompactFst) Type() string   { return "compact_" + f.compactor.Name() }
func (f *CompactFst) InputSymbols() *symbol.Table  { return f.inSyms }
func (f *CompactFst) OutputSymbols() *symbol.Table { return f.outSyms }
func (f *CompactFst) Properties(mask Properties, _ bool) Properties { return f.props & mask }

func (f *CompactFst) Arcs(s StateId) ArcIterator {
	if s < 0 || int(s) >= len(f.states) {
		return &compactArcIterator{}
	}
	st := f.states[s]
	return &compactArcIterator{
		f:      f,
		elems:  f.elements[st.offset : st.offset+st.count],
		nexts:  f.nextState[st.offset : st.offset+st.count],
		stateS: s,
	}
}

func (f *CompactFst) States() StateIterator { return &rangeStateIterator{n: len(f.states)} }

type compactArcIterator struct {
	f      *CompactFst
	elems  []Element
	nexts  []StateId
	stateS StateId
	pos    int
	flags  ArcIteratorFlags
}

func (it *compactArcIterator) Done() bool { return it.pos >= len(it.elems) }
func (it *compactArcIterator) Value() Arc {
	a := it.f.compactor.Expand(it.stateS, it.elems[it.pos], it.flags)
	a.NextState = it.nexts[it.pos]
	return a
}
func (it *compactArcIterator) Next()         { it.pos++ }
func (it *compactArcIterator) Position() int { return it.pos }
func (it *compactArcIterator) Seek(k int)    { it.pos = k }
func (it *compactArcIterator) Reset()        { it.pos = 0 }
func (it *compactArcIterator) SetFlags(mask ArcIteratorFlags, _ uint8) { it.flags = mask }
func (it *compactArcIterator) Close()        {}
