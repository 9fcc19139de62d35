package compose

import "errors"

// Sentinel errors returned by the compose package, matched by callers with
// errors.Is.
var (
	// ErrLabelMismatch indicates Compose was called on two transducers
	// whose shared label space is incompatible (fst1's output symbols and
	// fst2's input symbols are both present but have incompatible
	// checksums) — a §6.1 symbol-table compatibility violation.
	ErrLabelMismatch = errors.New("compose: incompatible symbol tables")

	// ErrNotSorted indicates a SortedMatcher was constructed over an Fst
	// that is not known to be label-sorted on the matched side.
	ErrNotSorted = errors.New("compose: matcher requires a label-sorted fst")

	// ErrNoSemiring indicates Compose was called on two transducers whose
	// arc weight semirings cannot be verified compatible (distinct dynamic
	// types observed on two arcs that should share one semiring).
	ErrNoSemiring = errors.New("compose: incompatible arc weight semirings")

	// ErrNotExpanded indicates WithPhiLabel was used with an fst2 that does
	// not implement fst.ExpandedFst, so PhiMatcher has no NumStates bound to
	// chase failure arcs against.
	ErrNotExpanded = errors.New("compose: WithPhiLabel requires fst2 to be an fst.ExpandedFst")
)
