package compose

import "github.com/wfstgo/wfst/fst"

// FilterState is the epsilon filter's own bookkeeping state, carried
// alongside the (s1, s2) state pair that composition's product
// construction tracks. Filters use small integer codes; composition keys
// its cache.Store tuples on (s1, s2, FilterState) so two paths reaching the
// same transducer states with different filter states remain distinct.
type FilterState int

// Filter resolves which (arc1, arc2) pairs compose's product construction
// is allowed to combine at a given filter state, and what filter state the
// combination transitions to. This exists to prevent the well-known
// epsilon-epsilon redundant-path explosion of naive transducer composition
// (§4.5): without it, a state pair from which both operands can take an
// epsilon move independently would be reachable by two different
// interleavings of those moves, double-counting (and, on non-idempotent
// semirings, double-weighting) the resulting path.
type Filter interface {
	// Start returns the filter state a fresh (start1, start2) pair begins
	// in.
	Start() FilterState
	// Allow reports whether the pair (a1, a2) may be combined when the
	// current filter state is fs, and if so, the filter state the result
	// transitions to. a1.OLabel and a2.ILabel need not be equal for
	// epsilon moves (see the per-filter doc comments); the composition
	// loop is responsible for only calling Allow with pairs it has already
	// decided are otherwise label-compatible.
	Allow(fs FilterState, a1, a2 fst.Arc) (FilterState, bool)
}

// sequenceState codes, shared by SequenceFilter and AltSequenceFilter.
const (
	fsBoth    FilterState = 0 // either side may move
	fsInFst1  FilterState = 1 // fst1 took the most recent epsilon move
	fsInFst2  FilterState = 2 // fst2 took the most recent epsilon move
)

// SequenceFilter implements the classical three-state sequence composition
// filter (§4.5, `original_source/.../compose-filter.h`'s
// SequenceComposeFilter): a real symbol match (a1.OLabel == a2.ILabel !=
// epsilon) is always allowed and resets to fsBoth; an fst1-only epsilon
// move (a1.OLabel == epsilon) is allowed unless the filter is currently
// fsInFst2, and transitions to fsInFst1; an fst2-only epsilon move is
// always allowed and transitions to fsInFst2. Between two real matches,
// every fst1 epsilon move therefore comes before every fst2 epsilon move,
// which is what "Sequence" (as opposed to "AltSequence") names.
type SequenceFilter struct{}

func NewSequenceFilter() *SequenceFilter { return &SequenceFilter{} }

func (SequenceFilter) Start() FilterState { return fsBoth }

func (SequenceFilter) Allow(fs FilterState, a1, a2 fst.Arc) (FilterState, bool) {
	switch {
	case a1.OLabel == fst.Epsilon:
		// a1 is the real, moving side; a2 is either a genuine real
		// output-epsilon arc or the NoLabel "fst2 stays" sentinel —
		// either way fst1 alone is taking this step.
		if fs == fsInFst2 {
			return fs, false
		}
		return fsInFst1, true
	case a2.ILabel == fst.Epsilon:
		return fsInFst2, true
	default:
		return fsBoth, a1.OLabel == a2.ILabel
	}
}

// AltSequenceFilter is SequenceFilter with the order reversed: an
// fst2-only epsilon move is always allowed, and an fst1-only epsilon move
// is allowed unless the filter is currently fsInFst2, so between two real
// matches every fst2 epsilon move comes before every fst1 epsilon move.
// Functionally equivalent to SequenceFilter
// (both produce a correct, non-duplicated composition); the two exist
// because a caller composing many transducers against one fixed operand
// gets better matcher cache locality biasing the tie-break toward whichever
// side varies less, per `original_source`'s AltSequenceComposeFilter.
type AltSequenceFilter struct{}

func NewAltSequenceFilter() *AltSequenceFilter { return &AltSequenceFilter{} }

func (AltSequenceFilter) Start() FilterState { return fsBoth }

func (AltSequenceFilter) Allow(fs FilterState, a1, a2 fst.Arc) (FilterState, bool) {
	switch {
	case a2.ILabel == fst.Epsilon:
		// Order reversed relative to SequenceFilter: fst2's epsilon moves
		// are never blocked, fst1's are blocked once fst2 has moved.
		return fsInFst2, true
	case a1.OLabel == fst.Epsilon:
		if fs == fsInFst2 {
			return fs, false
		}
		return fsInFst1, true
	default:
		return fsBoth, a1.OLabel == a2.ILabel
	}
}

// MatchFilter requires an exact, non-epsilon label match on both sides: no
// one-sided epsilon move is ever allowed, and since composition never
// offers a pair of two epsilon arcs, no epsilon arc of either operand is
// followed at all. This is the filter Intersect uses (§4.5.1).
type MatchFilter struct{}

func NewMatchFilter() *MatchFilter { return &MatchFilter{} }

func (MatchFilter) Start() FilterState { return fsBoth }
func (MatchFilter) Allow(fs FilterState, a1, a2 fst.Arc) (FilterState, bool) {
	// A NoLabel sentinel on either side marks a unilateral epsilon move
	// composition's arc loop is only offering because one operand had an
	// epsilon transition the other didn't match symbol-for-symbol; Match
	// semantics reject that unconditionally, symmetrically for both sides.
	if a1.OLabel == fst.NoLabel || a2.ILabel == fst.NoLabel {
		return fs, false
	}
	return fsBoth, a1.OLabel == a2.ILabel
}

// TrivialFilter performs no epsilon bookkeeping at all: every (a1, a2)
// pair with a1.OLabel == a2.ILabel is allowed unconditionally. It is valid
// only when at least one operand is epsilon-free (no state pair is then
// reachable via more than one epsilon interleaving, so there is nothing
// for a filter to disambiguate) — §4.5's cheap fast path, named
// TrivialComposeFilter in `original_source`. Composition callers must
// verify epsilon-freedom themselves (via fst.Properties) before selecting
// this filter; TrivialFilter does not check it.
type TrivialFilter struct{}

func NewTrivialFilter() *TrivialFilter { return &TrivialFilter{} }

func (TrivialFilter) Start() FilterState { return fsBoth }
func (TrivialFilter) Allow(fs FilterState, a1, a2 fst.Arc) (FilterState, bool) {
	// The epsilon-free operand never produces a unilateral move itself, so
	// any NoLabel sentinel here belongs to the other, epsilon-bearing
	// operand; with no competing ambiguity to filter, it is let through.
	if a1.OLabel == fst.NoLabel || a2.ILabel == fst.NoLabel {
		return fsBoth, true
	}
	return fsBoth, a1.OLabel == a2.ILabel
}
