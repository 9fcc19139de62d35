package compose

import (
	"fmt"

	"github.com/golang/glog"
	pkgerrors "github.com/pkg/errors"

	"github.com/wfstgo/wfst/cache"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
	"github.com/wfstgo/wfst/symbol"
)

// Options configures Compose/NewComposeFst.
type Options struct {
	Filter Filter
	// CompatSymbols mirrors §6.5's compat_symbols knob: when false, a
	// symbol-table checksum mismatch between fst1's output table and
	// fst2's input table is logged rather than rejected.
	CompatSymbols bool
	// RhoLabel, SigmaLabel, and PhiLabel select the §4.5 matcher-variant
	// special labels fst2 is matched against on its input side; fst.NoLabel
	// (the default) disables each. At most one of Rho/Sigma is expected to
	// be configured for a given composition; Phi composes independently of
	// either.
	RhoLabel, SigmaLabel, PhiLabel fst.Label
}

// Option is a functional option for Compose/NewComposeFst.
type Option func(*Options)

// DefaultOptions returns SequenceFilter as the default epsilon filter, the
// general-purpose choice safe for any pair of operands, with strict
// symbol-table compatibility checking and no special-label matching.
func DefaultOptions() Options {
	return Options{
		Filter:        NewSequenceFilter(),
		CompatSymbols: true,
		RhoLabel:      fst.NoLabel,
		SigmaLabel:    fst.NoLabel,
		PhiLabel:      fst.NoLabel,
	}
}

// WithFilter overrides the epsilon filter. Use NewTrivialFilter only when
// the caller has verified (via fst.Properties) that at least one operand is
// epsilon-free.
func WithFilter(f Filter) Option {
	return func(o *Options) { o.Filter = f }
}

// WithCompatSymbols toggles strict symbol-table compatibility checking;
// passing false downgrades a checksum mismatch to a warning.
func WithCompatSymbols(on bool) Option {
	return func(o *Options) { o.CompatSymbols = on }
}

// WithRhoLabel makes fst2's input side treat rhoLabel as a default
// transition: when fst1 offers a real label fst2 has no direct arc for,
// composition falls back to rhoLabel's arc instead of dropping the path.
func WithRhoLabel(rhoLabel fst.Label) Option {
	return func(o *Options) { o.RhoLabel = rhoLabel }
}

// WithSigmaLabel makes fst2's input side treat sigmaLabel as "any symbol",
// fired alongside (not instead of) whatever direct arc already matches.
func WithSigmaLabel(sigmaLabel fst.Label) Option {
	return func(o *Options) { o.SigmaLabel = sigmaLabel }
}

// WithPhiLabel makes fst2's input side follow phiLabel-labeled failure arcs
// when a label has no direct match, the backoff-automaton pattern. fst2
// must be an fst.ExpandedFst (PhiMatcher bounds its failure chase by
// NumStates); NewComposeFst returns ErrNotExpanded if it is not.
func WithPhiLabel(phiLabel fst.Label) Option {
	return func(o *Options) { o.PhiLabel = phiLabel }
}

// stateKey is the structural tuple composition interns into a StateId:
// which state each operand is in, plus the epsilon filter's bookkeeping
// state.
type stateKey struct {
	s1, s2 fst.StateId
	fs     FilterState
}

// ComposeFst is the on-demand composition of fst1 and fst2: each state's
// arcs are computed the first time they are visited and cached via
// package cache, so composing two large transducers costs time and space
// proportional to the part of the product actually explored rather than
// its full, potentially much larger, state space (§4.5).
type ComposeFst struct {
	fst1, fst2 fst.Fst
	filter     Filter
	newMatcher func() Matcher
	rhoLabel   fst.Label
	sigmaLabel fst.Label
	store      *cache.Store
	start      fst.StateId
	zero       semiring.Weight
}

// NewComposeFst builds the on-demand composition fst1 ∘ fst2: a path
// labeled (i, o) through the result exists with weight w iff there is a
// label sequence m such that fst1 admits (i, m) with weight w1, fst2 admits
// (m, o) with weight w2, and w = w1 ⊗ w2.
func NewComposeFst(fst1, fst2 fst.Fst, opts ...Option) (*ComposeFst, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkSymbolCompat(fst1.OutputSymbols(), fst2.InputSymbols(), cfg.CompatSymbols); err != nil {
		return nil, err
	}
	newMatcher, err := buildMatcherFactory(fst2, cfg)
	if err != nil {
		return nil, err
	}

	zero := pickZero(fst1, fst2)
	cf := &ComposeFst{
		fst1:       fst1,
		fst2:       fst2,
		filter:     cfg.Filter,
		newMatcher: newMatcher,
		rhoLabel:   cfg.RhoLabel,
		sigmaLabel: cfg.SigmaLabel,
		store:      cache.New(),
		zero:       zero,
		start:      fst.NoStateId,
	}

	s1, s2 := fst1.Start(), fst2.Start()
	if s1 != fst.NoStateId && s2 != fst.NoStateId {
		cf.start = cf.store.Intern(stateKey{s1, s2, cfg.Filter.Start()})
	}
	return cf, nil
}

func pickZero(fst1, fst2 fst.Fst) semiring.Weight {
	if fst1.Start() != fst.NoStateId {
		return fst1.Final(fst1.Start()).Zero()
	}
	if fst2.Start() != fst.NoStateId {
		return fst2.Final(fst2.Start()).Zero()
	}
	return semiring.TropicalZero
}

// buildMatcherFactory returns how ensure constructs fst2's input-side
// matcher for every state it visits, wrapping the plain SortedMatcher/
// LinearMatcher with whichever of Rho/Sigma/Phi cfg selects. Phi replaces
// the base matcher outright (it reads fst2's arcs directly to chase failure
// transitions); Rho and Sigma wrap it.
func buildMatcherFactory(fst2 fst.Fst, cfg Options) (func() Matcher, error) {
	if cfg.PhiLabel != fst.NoLabel {
		exp, ok := fst2.(fst.ExpandedFst)
		if !ok {
			return nil, ErrNotExpanded
		}
		return func() Matcher { return NewPhiMatcher(exp, MatchInput, cfg.PhiLabel) }, nil
	}
	return func() Matcher {
		var m Matcher = NewMatcher(fst2, MatchInput)
		if cfg.RhoLabel != fst.NoLabel {
			m = NewRhoMatcher(m, cfg.RhoLabel)
		}
		if cfg.SigmaLabel != fst.NoLabel {
			m = NewSigmaMatcher(m, cfg.SigmaLabel)
		}
		return m
	}, nil
}

// substituteSpecialLabel rewrites a matched arc's ILabel back to requested
// when the matcher returned it via a Rho/Sigma special-label fallback
// (arc.ILabel == special, special != requested) rather than a genuine
// direct match, per matcher.go's Find doc: the caller, not the matcher, is
// responsible for this substitution.
func substituteSpecialLabel(a fst.Arc, special, requested fst.Label) fst.Arc {
	if special != fst.NoLabel && requested != special && a.ILabel == special {
		a.ILabel = requested
	}
	return a
}

func checkSymbolCompat(out, in *symbol.Table, strict bool) error {
	if out == nil || in == nil {
		return nil
	}
	if symbol.CompatSymbols(out, in, true) {
		return nil
	}
	if !strict {
		if glog.V(1) {
			glog.Infof("compose: output/input symbol table checksum mismatch, proceeding (compat_symbols=false)")
		}
		return nil
	}
	return pkgerrors.Wrap(ErrLabelMismatch, "compose: output/input symbol table checksum mismatch")
}

func (f *ComposeFst) Start() fst.StateId { return f.start }

func (f *ComposeFst) Final(s fst.StateId) semiring.Weight {
	e, err := f.ensure(s)
	if err != nil {
		return f.zero
	}
	return e.Final
}

func (f *ComposeFst) NumArcs(s fst.StateId) int {
	e, err := f.ensure(s)
	if err != nil {
		return 0
	}
	return len(e.Arcs)
}

func (f *ComposeFst) NumInputEpsilons(s fst.StateId) int {
	e, err := f.ensure(s)
	if err != nil {
		return 0
	}
	n := 0
	for _, a := range e.Arcs {
		if a.ILabel == fst.Epsilon {
			n++
		}
	}
	return n
}

func (f *ComposeFst) NumOutputEpsilons(s fst.StateId) int {
	e, err := f.ensure(s)
	if err != nil {
		return 0
	}
	n := 0
	for _, a := range e.Arcs {
		if a.OLabel == fst.Epsilon {
			n++
		}
	}
	return n
}

func (f *ComposeFst) Arcs(s fst.StateId) fst.ArcIterator {
	e, err := f.ensure(s)
	if err != nil {
		return &composeArcIterator{}
	}
	release := f.store.Pin(s)
	return &composeArcIterator{arcs: e.Arcs, release: release}
}

// States triggers a full breadth-first expansion of the composition from
// its start state (there is no way to enumerate "every state of an
// on-demand Fst" without visiting all of them) and returns an iterator over
// the now-fully-interned state space. Algorithms that only need local
// structure (Arcs/Final at specific states) never pay this cost.
func (f *ComposeFst) States() fst.StateIterator {
	if f.start == fst.NoStateId {
		return &composeStateIterator{}
	}
	visited := map[fst.StateId]bool{f.start: true}
	queue := []fst.StateId{f.start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		e, err := f.ensure(s)
		if err != nil {
			continue
		}
		for _, a := range e.Arcs {
			if !visited[a.NextState] {
				visited[a.NextState] = true
				queue = append(queue, a.NextState)
			}
		}
	}
	return &composeStateIterator{n: f.store.Size()}
}

func (f *ComposeFst) Properties(mask fst.Properties, test bool) fst.Properties {
	return 0 // composition does not precompute/cache property bits in this module.
}

func (f *ComposeFst) Type() string { return "compose" }

func (f *ComposeFst) InputSymbols() *symbol.Table  { return f.fst1.InputSymbols() }
func (f *ComposeFst) OutputSymbols() *symbol.Table { return f.fst2.OutputSymbols() }

// ensure materializes s's arcs and final weight if not already cached.
func (f *ComposeFst) ensure(s fst.StateId) (*cache.Entry, error) {
	e, err := f.store.Entry(s)
	if err != nil {
		return nil, err
	}
	if e.ArcsDone && e.FinalKnown {
		return e, nil
	}

	tupleAny := f.store.Tuple(s)
	key, ok := tupleAny.(stateKey)
	if !ok {
		return nil, fmt.Errorf("compose: state %d has no structural tuple", s)
	}

	final := f.fst1.Final(key.s1).Times(f.fst2.Final(key.s2))
	var arcs []fst.Arc

	m2 := f.newMatcher()
	m2.SetState(key.s2)

	for ai := f.fst1.Arcs(key.s1); !ai.Done(); ai.Next() {
		a1 := ai.Value()
		if a1.OLabel == fst.Epsilon {
			// fst2 stays put: its companion arc is the NoLabel sentinel
			// (original_source's kNoLabel convention, compose-filter.h),
			// never Epsilon, so MatchFilter/TrivialFilter can tell this
			// apart from a genuine a2.ILabel == Epsilon arc symmetrically
			// with the fst2-unilateral branch below.
			nfs, allowed := f.filter.Allow(key.fs, a1, fst.Arc{ILabel: fst.NoLabel, OLabel: fst.NoLabel, NextState: key.s2})
			if !allowed {
				continue
			}
			dest := f.store.Intern(stateKey{a1.NextState, key.s2, nfs})
			arcs = append(arcs, fst.Arc{ILabel: a1.ILabel, OLabel: fst.Epsilon, Weight: a1.Weight, NextState: dest})
			continue
		}
		for _, raw := range m2.Find(a1.OLabel) {
			a2 := substituteSpecialLabel(raw, f.rhoLabel, a1.OLabel)
			a2 = substituteSpecialLabel(a2, f.sigmaLabel, a1.OLabel)
			nfs, allowed := f.filter.Allow(key.fs, a1, a2)
			if !allowed {
				continue
			}
			dest := f.store.Intern(stateKey{a1.NextState, a2.NextState, nfs})
			arcs = append(arcs, fst.Arc{ILabel: a1.ILabel, OLabel: a2.OLabel, Weight: a1.Weight.Times(a2.Weight), NextState: dest})
		}
	}

	// fst2-only epsilon moves: a2 offers an epsilon input with fst1
	// stationary; the companion sentinel mirrors the fst1-unilateral branch
	// above, NoLabel on both fields.
	for ai := f.fst2.Arcs(key.s2); !ai.Done(); ai.Next() {
		a2 := ai.Value()
		if a2.ILabel != fst.Epsilon {
			continue
		}
		nfs, allowed := f.filter.Allow(key.fs, fst.Arc{ILabel: fst.NoLabel, OLabel: fst.NoLabel, NextState: key.s1}, a2)
		if !allowed {
			continue
		}
		dest := f.store.Intern(stateKey{key.s1, a2.NextState, nfs})
		arcs = append(arcs, fst.Arc{ILabel: fst.Epsilon, OLabel: a2.OLabel, Weight: a2.Weight, NextState: dest})
	}

	newEntry := &cache.Entry{Arcs: arcs, Final: final, ArcsDone: true, FinalKnown: true}
	if err := f.store.Update(s, newEntry); err != nil {
		return nil, err
	}
	return newEntry, nil
}

type composeArcIterator struct {
	arcs    []fst.Arc
	pos     int
	release func()
	closed  bool
}

func (it *composeArcIterator) Done() bool    { return it.pos >= len(it.arcs) }
func (it *composeArcIterator) Value() fst.Arc { return it.arcs[it.pos] }
func (it *composeArcIterator) Next()         { it.pos++ }
func (it *composeArcIterator) Position() int { return it.pos }
func (it *composeArcIterator) Seek(k int)    { it.pos = k }
func (it *composeArcIterator) Reset()        { it.pos = 0 }
func (it *composeArcIterator) SetFlags(fst.ArcIteratorFlags, uint8) {}
func (it *composeArcIterator) Close() {
	if it.closed || it.release == nil {
		return
	}
	it.closed = true
	it.release()
}

type composeStateIterator struct {
	n   int
	pos int
}

func (it *composeStateIterator) Done() bool       { return it.pos >= it.n }
func (it *composeStateIterator) Value() fst.StateId { return fst.StateId(it.pos) }
func (it *composeStateIterator) Next()            { it.pos++ }
func (it *composeStateIterator) Reset()           { it.pos = 0 }

// Compose eagerly materializes fst1 ∘ fst2 into a VectorFst, running the
// on-demand ComposeFst to completion via a full state-space walk. This is
// the convenience entry point most callers want; NewComposeFst is exposed
// separately for callers that want to defer expansion.
func Compose(fst1, fst2 fst.Fst, opts ...Option) (*fst.VectorFst, error) {
	cf, err := NewComposeFst(fst1, fst2, opts...)
	if err != nil {
		return nil, err
	}
	return fst.ToVectorFst(cf, cf.zero), nil
}
