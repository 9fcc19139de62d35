package fst

import (
	"github.com/wfstgo/wfst/semiring"
	"github.com/wfstgo/wfst/symbol"
)

// ArcIteratorFlags hints which arc fields a caller will read, letting a
// compact representation skip decoding the rest (§4.2).
type ArcIteratorFlags uint8

const (
	FlagILabel ArcIteratorFlags = 1 << iota
	FlagOLabel
	FlagWeight
	FlagNextState
	FlagAll = FlagILabel | FlagOLabel | FlagWeight | FlagNextState
)

// ArcIterator enumerates the arcs leaving one state. It is not safe for
// concurrent use; callers open one per traversal frame.
type ArcIterator interface {
	// Done reports whether iteration has exhausted this state's arcs.
	Done() bool
	// Value returns the current arc. Valid only when !Done().
	Value() Arc
	// Next advances to the next arc.
	Next()
	// Position returns the current zero-based arc index.
	Position() int
	// Seek repositions to arc index k (0 <= k <= NumArcs).
	Seek(k int)
	// Reset repositions to the first arc.
	Reset()
	// SetFlags hints which Arc fields the caller will read; reserved is
	// unused by the in-memory representations in this module but present
	// for parity with the spec's iterator surface.
	SetFlags(mask ArcIteratorFlags, reserved uint8)
	// Close releases any cache pin acquired by this iterator (§4.4's
	// pinning contract for delayed Fsts; a no-op for concrete Fsts).
	Close()
}

// StateIterator enumerates every state of an Fst in an implementation-
// defined but repeatable order (state-id ascending for the concrete types
// in this package).
type StateIterator interface {
	Done() bool
	Value() StateId
	Next()
	Reset()
}

// Fst is the read-only, random-access transducer interface every concrete
// and delayed transducer implements (§3.3/§4.2).
type Fst interface {
	// Start returns the start state, or NoStateId if the Fst is empty.
	Start() StateId
	// Final returns s's final weight; Zero() of the Fst's semiring iff s
	// is non-final (or does not exist).
	Final(s StateId) semiring.Weight
	// NumArcs returns the number of arcs leaving s.
	NumArcs(s StateId) int
	// NumInputEpsilons returns the number of s's arcs with ILabel ==
	// Epsilon.
	NumInputEpsilons(s StateId) int
	// NumOutputEpsilons returns the number of s's arcs with OLabel ==
	// Epsilon.
	NumOutputEpsilons(s StateId) int
	// Arcs opens an arc iterator over s.
	Arcs(s StateId) ArcIterator
	// States opens a state iterator over the whole Fst.
	States() StateIterator
	// Properties returns known bits intersected with mask if test is
	// false; if test is true, computes any bits in mask not already known
	// via a single-pass scan, caches them, and returns the result.
	Properties(mask Properties, test bool) Properties
	// Type identifies the concrete implementation ("vector", "const",
	// "compact_<compactor name>", or a delayed combinator's name) for the Cast contract
	// and for I/O type dispatch.
	Type() string
	// InputSymbols and OutputSymbols return this Fst's symbol tables, or
	// nil if absent.
	InputSymbols() *symbol.Table
	OutputSymbols() *symbol.Table
}

// ExpandedFst additionally exposes the total state count, meaning the
// caller can iterate [0, NumStates) directly instead of via States().
type ExpandedFst interface {
	Fst
	NumStates() int
}

// MutableFst additionally supports in-place construction and editing.
type MutableFst interface {
	ExpandedFst

	// AddState appends a new state with Zero final weight and no arcs,
	// returning its id (always NumStates() before the call).
	AddState() StateId
	// ReserveStates pre-allocates capacity for n additional states.
	ReserveStates(n int)
	// ReserveArcs pre-allocates capacity for n additional arcs at s.
	ReserveArcs(s StateId, n int)
	// SetStart sets the start state.
	SetStart(s StateId)
	// SetFinal sets s's final weight.
	SetFinal(s StateId, w semiring.Weight)
	// AddArc appends an arc leaving s.
	AddArc(s StateId, a Arc)
	// DeleteStates removes the given states (and any arcs referencing
	// them) and renumbers remaining states contiguously from 0.
	DeleteStates(states []StateId)
	// DeleteArcs removes s's arcs at the given zero-based indices.
	DeleteArcs(s StateId, indices []int)
	// SetInputSymbols and SetOutputSymbols attach symbol tables; nil
	// clears them. Mutating a shared table triggers copy-on-write (§3.5).
	SetInputSymbols(t *symbol.Table)
	SetOutputSymbols(t *symbol.Table)
	// MutableArcIterator opens an iterator over s that additionally
	// supports SetValue, for in-place arc edits.
	MutableArcIterator(s StateId) MutableArcIterator
}

// MutableArcIterator extends ArcIterator with in-place arc replacement. A
// concrete Fst's implementation must clear any cached sort/epsilon-count
// properties invalidated by SetValue, per §4.2.
type MutableArcIterator interface {
	ArcIterator
	SetValue(a Arc)
}
