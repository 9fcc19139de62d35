package compose

import (
	"sort"

	"github.com/wfstgo/wfst/fst"
)

// Side identifies which label a Matcher looks arcs up by: MatchInput
// matches on an arc's ILabel (used when this side is the right-hand
// operand of a product, consuming the left-hand operand's output), and
// MatchOutput matches on OLabel (the left-hand operand, matched against
// the right-hand operand's input requests).
type Side int

const (
	MatchInput Side = iota
	MatchOutput
)

// Matcher looks up, for a given state, the arcs whose matched-side label
// equals a requested label. Implementations may also answer for the
// special Rho/Sigma/Phi labels via their own wrapping logic; Find always
// returns concrete, already-resolved arcs (§4.5's matcher contract,
// simplified here to return a slice rather than a stateful iterator since
// every concrete matcher in this module resolves eagerly per call).
type Matcher interface {
	// SetState repositions the matcher onto s; Find applies to s
	// until the next SetState call.
	SetState(s fst.StateId)
	// Find returns every arc at the current state whose matched-side label
	// equals label. label == fst.Epsilon is a legitimate request (epsilon
	// self-loops on the unmatched side are handled by the compose filter,
	// not the matcher).
	Find(label fst.Label) []fst.Arc
	// Side reports which label this matcher matches on.
	Side() Side
}

// sideLabel extracts the side this matcher cares about from an arc.
func sideLabel(side Side, a fst.Arc) fst.Label {
	if side == MatchInput {
		return a.ILabel
	}
	return a.OLabel
}

// SortedMatcher binary-searches a state's arcs assuming they are sorted
// ascending by the matched side's label (§4.5; the caller must have run
// fst.ArcSortInput/ArcSortOutput first, or built the Fst sorted by
// construction). This is the common-case, cheapest matcher.
type SortedMatcher struct {
	f     fst.Fst
	side  Side
	s     fst.StateId
	cache []fst.Arc
}

// NewSortedMatcher returns a SortedMatcher over f for the given side.
func NewSortedMatcher(f fst.Fst, side Side) *SortedMatcher {
	return &SortedMatcher{f: f, side: side, s: fst.NoStateId}
}

func (m *SortedMatcher) SetState(s fst.StateId) {
	if s == m.s {
		return
	}
	m.s = s
	m.cache = m.cache[:0]
	for ai := m.f.Arcs(s); !ai.Done(); ai.Next() {
		m.cache = append(m.cache, ai.Value())
	}
}

func (m *SortedMatcher) Find(label fst.Label) []fst.Arc {
	lo := sort.Search(len(m.cache), func(i int) bool { return sideLabel(m.side, m.cache[i]) >= label })
	hi := lo
	for hi < len(m.cache) && sideLabel(m.side, m.cache[hi]) == label {
		hi++
	}
	return m.cache[lo:hi]
}

func (m *SortedMatcher) Side() Side { return m.side }

// LinearMatcher scans a state's arcs in whatever order the Fst presents
// them, for callers that cannot guarantee the matched side is label-sorted.
// O(NumArcs(s)) per Find versus SortedMatcher's O(log NumArcs(s)); always
// correct regardless of arc order.
type LinearMatcher struct {
	f    fst.Fst
	side Side
	s    fst.StateId
}

// NewLinearMatcher returns a LinearMatcher over f for the given side.
func NewLinearMatcher(f fst.Fst, side Side) *LinearMatcher {
	return &LinearMatcher{f: f, side: side, s: fst.NoStateId}
}

func (m *LinearMatcher) SetState(s fst.StateId) { m.s = s }
func (m *LinearMatcher) Side() Side             { return m.side }
func (m *LinearMatcher) Find(label fst.Label) []fst.Arc {
	var out []fst.Arc
	for ai := m.f.Arcs(m.s); !ai.Done(); ai.Next() {
		a := ai.Value()
		if sideLabel(m.side, a) == label {
			out = append(out, a)
		}
	}
	return out
}

// NewMatcher picks SortedMatcher when f is known to be sorted on the
// requested side, falling back to LinearMatcher otherwise.
func NewMatcher(f fst.Fst, side Side) Matcher {
	var sortedBit fst.Properties
	if side == MatchInput {
		sortedBit = fst.ILabelSortedYes
	} else {
		sortedBit = fst.OLabelSortedYes
	}
	if f.Properties(sortedBit, false)&sortedBit != 0 {
		return NewSortedMatcher(f, side)
	}
	return NewLinearMatcher(f, side)
}

// RhoMatcher wraps another Matcher and additionally treats rhoLabel as a
// default/"anything else" transition: if the wrapped matcher finds no arc
// for the requested label, RhoMatcher retries with rhoLabel and, if found,
// returns those arcs (the caller is responsible for substituting the
// originally-requested label back onto the result per §4.5's rho
// semantics, since the rho arc's own label is a placeholder, not the
// matched symbol).
type RhoMatcher struct {
	inner    Matcher
	rhoLabel fst.Label
}

// NewRhoMatcher wraps inner, treating rhoLabel as the default-transition
// marker.
func NewRhoMatcher(inner Matcher, rhoLabel fst.Label) *RhoMatcher {
	return &RhoMatcher{inner: inner, rhoLabel: rhoLabel}
}

func (m *RhoMatcher) SetState(s fst.StateId) { m.inner.SetState(s) }
func (m *RhoMatcher) Side() Side             { return m.inner.Side() }
func (m *RhoMatcher) Find(label fst.Label) []fst.Arc {
	if found := m.inner.Find(label); len(found) > 0 {
		return found
	}
	if label == m.rhoLabel {
		return nil
	}
	return m.inner.Find(m.rhoLabel)
}

// SigmaMatcher wraps another Matcher and treats sigmaLabel as "matches any
// symbol", in addition to (not instead of) explicit arcs for that symbol —
// unlike Rho, a Sigma arc fires alongside explicit matches rather than only
// as a fallback, per §4.5.
type SigmaMatcher struct {
	inner      Matcher
	sigmaLabel fst.Label
}

// NewSigmaMatcher wraps inner, treating sigmaLabel as "any symbol".
func NewSigmaMatcher(inner Matcher, sigmaLabel fst.Label) *SigmaMatcher {
	return &SigmaMatcher{inner: inner, sigmaLabel: sigmaLabel}
}

func (m *SigmaMatcher) SetState(s fst.StateId) { m.inner.SetState(s) }
func (m *SigmaMatcher) Side() Side             { return m.inner.Side() }
func (m *SigmaMatcher) Find(label fst.Label) []fst.Arc {
	direct := m.inner.Find(label)
	if label == m.sigmaLabel {
		return direct
	}
	sigma := m.inner.Find(m.sigmaLabel)
	if len(sigma) == 0 {
		return direct
	}
	out := make([]fst.Arc, 0, len(direct)+len(sigma))
	out = append(out, direct...)
	out = append(out, sigma...)
	return out
}

// PhiMatcher reads f's arcs directly and follows phi-labeled "failure"
// arcs to an alternate state when a label has no direct match, re-querying
// at the failure-arc's destination — the backoff-automaton pattern named in
// §4.5. It does not wrap another Matcher: the failure states it moves into
// are states of the same f.
type PhiMatcher struct {
	f        fst.ExpandedFst
	side     Side
	phiLabel fst.Label
	s        fst.StateId
}

// NewPhiMatcher returns a PhiMatcher over f for the given side, following
// phiLabel-labeled arcs on failure. f must be an ExpandedFst so Find can
// bound its failure-chasing loop by NumStates and always terminate even if
// phi arcs form a cycle.
func NewPhiMatcher(f fst.ExpandedFst, side Side, phiLabel fst.Label) *PhiMatcher {
	return &PhiMatcher{f: f, side: side, phiLabel: phiLabel, s: fst.NoStateId}
}

func (m *PhiMatcher) SetState(s fst.StateId) { m.s = s }
func (m *PhiMatcher) Side() Side             { return m.side }

func (m *PhiMatcher) Find(label fst.Label) []fst.Arc {
	s := m.s
	for depth := 0; depth < m.f.NumStates()+1; depth++ {
		var direct []fst.Arc
		var phiArc *fst.Arc
		for ai := m.f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			if sideLabel(m.side, a) == label {
				direct = append(direct, a)
			} else if sideLabel(m.side, a) == m.phiLabel {
				cp := a
				phiArc = &cp
			}
		}
		if len(direct) > 0 || phiArc == nil || label == m.phiLabel {
			return direct
		}
		s = phiArc.NextState
	}
	return nil
}
