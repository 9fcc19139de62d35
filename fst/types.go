package fst

import "github.com/wfstgo/wfst/semiring"

// Label identifies an input or output symbol on an arc. Zero is reserved
// for epsilon (matches without consuming); negative values other than
// NoLabel are reserved for algorithm-internal use (e.g. the complement's
// rho label, determinization's subsequential label).
type Label int64

// Epsilon is the reserved "no symbol" label.
const Epsilon Label = 0

// NoLabel marks the absence of a label.
const NoLabel Label = -1

// StateId identifies a state within an Fst. NoStateId marks the absence of
// a state (an empty Fst's Start(), or a not-yet-interned tuple).
type StateId int64

// NoStateId marks "no state".
const NoStateId StateId = -1

// Arc is a directed edge: consume ILabel, emit OLabel, pay Weight, move to
// NextState.
type Arc struct {
	ILabel    Label
	OLabel    Label
	Weight    semiring.Weight
	NextState StateId
}

// IsEpsilon reports whether this arc consumes and emits nothing (both
// labels epsilon) — the case rmepsilon eliminates.
func (a Arc) IsEpsilon() bool { return a.ILabel == Epsilon && a.OLabel == Epsilon }

// IsInputEpsilon reports whether the arc's input side is epsilon.
func (a Arc) IsInputEpsilon() bool { return a.ILabel == Epsilon }

// IsOutputEpsilon reports whether the arc's output side is epsilon.
func (a Arc) IsOutputEpsilon() bool { return a.OLabel == Epsilon }
