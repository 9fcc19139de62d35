package fst

// Properties is a 64-bit vector of capability facts about a transducer.
// Ternary (content) properties use two bits each: a Yes-bit and a No-bit;
// neither set means unknown. Binary (static) properties use a single bit.
// Algorithms query known bits to skip redundant work and, when they compute
// a previously-unknown bit, cache it (via the owning Fst's Properties
// method) so later queries are O(1), per §3.4/§4.3.
type Properties uint64

// Static binary properties (determined by the concrete Fst type, never
// change for a given value).
const (
	Expanded Properties = 1 << iota
	Mutable
	Error // set when an algorithm detects a contract violation (§7.5)
)

// Trinary content properties: each pair (Yes, No) describes one ternary
// fact. A property P holds iff its Yes bit is set; P is known to not hold
// iff its No bit is set; both clear means unknown.
const (
	AcceptorYes Properties = 1 << (iota + 3)
	AcceptorNo

	ILabelSortedYes
	ILabelSortedNo

	OLabelSortedYes
	OLabelSortedNo

	WeightedYes
	WeightedNo

	CyclicYes
	CyclicNo

	InitialCyclicYes
	InitialCyclicNo

	AccessibleYes
	AccessibleNo

	CoAccessibleYes
	CoAccessibleNo

	StringYes
	StringNo

	IDeterministicYes
	IDeterministicNo

	ODeterministicYes
	ODeterministicNo

	NoEpsilonsYes
	NoEpsilonsNo

	NoIEpsilonsYes
	NoIEpsilonsNo

	NoOEpsilonsYes
	NoOEpsilonsNo

	TopSortedYes
	TopSortedNo

	UnweightedCyclesYes
	UnweightedCyclesNo
)

// AllTrinary is every (Yes|No) pair defined above, used by masks that want
// "every content bit this library tracks".
const AllTrinary = AcceptorYes | AcceptorNo |
	ILabelSortedYes | ILabelSortedNo |
	OLabelSortedYes | OLabelSortedNo |
	WeightedYes | WeightedNo |
	CyclicYes | CyclicNo |
	InitialCyclicYes | InitialCyclicNo |
	AccessibleYes | AccessibleNo |
	CoAccessibleYes | CoAccessibleNo |
	StringYes | StringNo |
	IDeterministicYes | IDeterministicNo |
	ODeterministicYes | ODeterministicNo |
	NoEpsilonsYes | NoEpsilonsNo |
	NoIEpsilonsYes | NoIEpsilonsNo |
	NoOEpsilonsYes | NoOEpsilonsNo |
	TopSortedYes | TopSortedNo |
	UnweightedCyclesYes | UnweightedCyclesNo

// Masks appropriate to each mutation, per §4.3: after the named operation,
// only the bits in the corresponding mask may remain valid; a MutableFst
// implementation ANDs its known-properties field with these masks (i.e.
// clears everything NOT preserved) on every edit.
const (
	// SetStartProperties: changing the start state invalidates
	// initial-cyclic and top-sorted facts but nothing else.
	SetStartProperties = AllTrinary &^ (InitialCyclicYes | InitialCyclicNo | TopSortedYes | TopSortedNo)

	// AddStateProperties: adding an unconnected state cannot change
	// acceptor/sortedness/weighted/epsilon facts about existing arcs, but
	// accessibility/coaccessibility of the graph as a whole becomes
	// unknown (the new state is presumptively inaccessible until an arc
	// targets it).
	AddStateProperties = AllTrinary &^ (AccessibleYes | AccessibleNo | CoAccessibleYes | CoAccessibleNo)

	// AddArcProperties: adding an arc can change every content bit.
	AddArcProperties Properties = 0

	// SetFinalProperties: changing a final weight can change
	// coaccessibility, weighted-ness, and string-ness.
	SetFinalProperties = AllTrinary &^ (CoAccessibleYes | CoAccessibleNo | WeightedYes | WeightedNo | StringYes | StringNo)

	// DeleteStatesProperties: deleting states is as invasive as adding
	// arcs for the purposes of which bits survive.
	DeleteStatesProperties Properties = 0

	// DeleteArcsProperties: deleting arcs can change every content bit
	// except it cannot make a non-acceptor into non-weighted in a way
	// that requires fresh top-sort info beyond what AddArc already loses.
	DeleteArcsProperties Properties = 0
)

// Holds reports whether every Yes-bit set in want is also set in have,
// i.e. "have asserts everything want asks for".
func Holds(have, want Properties) bool {
	return have&want == want
}

// KnownMask returns, for a properties value produced by a query with a
// given mask, the subset of mask whose answer is actually known (Yes or No
// bit present for every ternary pair touched by mask).
func KnownMask(have, mask Properties) Properties {
	return have & mask
}
