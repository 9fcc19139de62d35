package fst

import "errors"

// Sentinel errors for the fst package. Per the ambient error-handling
// convention (SPEC_FULL.md), every algorithm returns these via errors.Is
// rather than constructing ad hoc errors, and callers add context with
// fmt.Errorf("...: %w", ErrX).
var (
	// ErrNoState is returned when a StateId outside [0, NumStates) is used
	// against a MutableFst or ExpandedFst operation that requires a valid
	// state (random-access Fst methods instead return the Zero weight /
	// empty arc list for out-of-range queries, per §3.3's "Final(s) is
	// Zero iff s is non-final", which is vacuously true for absent s).
	ErrNoState = errors.New("fst: no such state")

	// ErrIncompatibleWeightType names the case of two operands carrying
	// weights of different dynamic semiring types. Cast does not return
	// it, and no function in this module currently does.
	ErrIncompatibleWeightType = errors.New("fst: incompatible weight types")

	// ErrIncompatibleRepresentation names the case of two concrete Fst
	// types that are not bit-identical for the concerned fields. Cast does
	// not return it, and no function in this module currently does.
	ErrIncompatibleRepresentation = errors.New("fst: incompatible in-memory representation")

	// ErrSymbolsIncompatible is returned when two Fsts' symbol tables
	// fail CompatSymbols and compat_symbols enforcement is enabled.
	ErrSymbolsIncompatible = errors.New("fst: incompatible symbol tables")

	// ErrNegativeLabel is returned by readers enforcing a no-negative-
	// labels policy on user-supplied label values other than NoLabel.
	ErrNegativeLabel = errors.New("fst: negative label not permitted here")
)
