package fst

// The functions below are the pure propagation rules of §4.3: given the
// (fully known) properties of a combinator's operand(s), compute the subset
// of bits that provably hold for the result, without inspecting the result
// itself. Every rule here is deliberately conservative — "the output's
// asserted bits are a subset of bits that actually hold" (§8.2) — so a rule
// that cannot prove a bit simply omits it rather than guessing Yes.

func yesIf(cond bool, yes, no Properties) Properties {
	if cond {
		return yes
	}
	return no
}

// UnionProperties is the propagation rule for the delayed union combinator.
func UnionProperties(p1, p2 Properties) Properties {
	var out Properties
	out |= yesIf(p1&AcceptorYes != 0 && p2&AcceptorYes != 0, AcceptorYes, 0)
	out |= yesIf(p1&WeightedYes != 0 || p2&WeightedYes != 0, WeightedYes, 0)
	out |= yesIf(p1&WeightedNo != 0 && p2&WeightedNo != 0, 0, WeightedNo)
	// Union always introduces a fresh start state with epsilon arcs to
	// both operands' starts, so "no epsilons" never survives.
	out |= NoEpsilonsNo | NoIEpsilonsNo | NoOEpsilonsNo
	return out
}

// ConcatProperties is the propagation rule for delayed concatenation.
func ConcatProperties(p1, p2 Properties) Properties {
	var out Properties
	out |= yesIf(p1&AcceptorYes != 0 && p2&AcceptorYes != 0, AcceptorYes, 0)
	out |= yesIf(p1&WeightedYes != 0 || p2&WeightedYes != 0, WeightedYes, 0)
	out |= NoEpsilonsNo | NoIEpsilonsNo | NoOEpsilonsNo
	return out
}

// ClosureProperties is the propagation rule for delayed Kleene closure.
func ClosureProperties(p1 Properties) Properties {
	var out Properties
	out |= p1 & AcceptorYes
	out |= p1 & WeightedYes
	out |= CyclicYes // a non-empty closure always admits a repeat cycle
	out |= NoEpsilonsNo | NoIEpsilonsNo | NoOEpsilonsNo
	return out
}

// ComposeProperties implements the latest OpenFST formulation (per
// SPEC_FULL.md's Open Question decision #1): the result is an acceptor iff
// both operands are; it is weighted iff either operand is; sortedness and
// determinism are not propagated since composition's matcher-driven
// expansion order does not preserve either in general.
func ComposeProperties(p1, p2 Properties) Properties {
	var out Properties
	out |= yesIf(p1&AcceptorYes != 0 && p2&AcceptorYes != 0, AcceptorYes, 0)
	if p1&WeightedYes != 0 || p2&WeightedYes != 0 {
		out |= WeightedYes
	} else if p1&WeightedNo != 0 && p2&WeightedNo != 0 {
		out |= WeightedNo
	}
	return out
}

// InvertProperties swaps the input/output-epsilon and sortedness facts
// (Invert swaps ilabel/olabel on every arc).
func InvertProperties(p Properties) Properties {
	out := p & (AcceptorYes | AcceptorNo | WeightedYes | WeightedNo | CyclicYes | CyclicNo |
		AccessibleYes | AccessibleNo | CoAccessibleYes | CoAccessibleNo | TopSortedYes | TopSortedNo)
	if p&ILabelSortedYes != 0 {
		out |= OLabelSortedYes
	}
	if p&OLabelSortedYes != 0 {
		out |= ILabelSortedYes
	}
	if p&NoIEpsilonsYes != 0 {
		out |= NoOEpsilonsYes
	}
	if p&NoOEpsilonsYes != 0 {
		out |= NoIEpsilonsYes
	}
	if p&NoEpsilonsYes != 0 {
		out |= NoEpsilonsYes
	}
	if p&IDeterministicYes != 0 {
		out |= ODeterministicYes
	}
	if p&ODeterministicYes != 0 {
		out |= IDeterministicYes
	}
	return out
}

// ProjectProperties is the propagation rule for Project: the result is
// always an acceptor (both labels are set to the kept side).
func ProjectProperties(p Properties) Properties {
	out := p & (WeightedYes | WeightedNo | CyclicYes | CyclicNo | AccessibleYes | AccessibleNo |
		CoAccessibleYes | CoAccessibleNo | TopSortedYes | TopSortedNo | NoEpsilonsYes | NoEpsilonsNo)
	out |= AcceptorYes
	return out
}

// RelabelProperties conservatively drops sortedness and determinism, since
// an arbitrary label map can reorder or collide labels.
func RelabelProperties(p Properties) Properties {
	return p & (AcceptorYes | AcceptorNo | WeightedYes | WeightedNo | CyclicYes | CyclicNo |
		AccessibleYes | AccessibleNo | CoAccessibleYes | CoAccessibleNo)
}

// ConnectProperties is the result of Connect: always accessible and
// coaccessible; every other bit the input had still holds on the trimmed
// subgraph since Connect only deletes states/arcs, never adds them.
func ConnectProperties(p Properties) Properties {
	out := p &^ (AccessibleYes | AccessibleNo | CoAccessibleYes | CoAccessibleNo)
	out |= AccessibleYes | CoAccessibleYes
	return out
}

// RmEpsilonProperties is the result of epsilon removal: no arc has both
// labels epsilon afterward (§8.2's RmEpsilon post-condition); acceptor-ness,
// weighted-ness and cyclicity may all change and are left unknown unless
// the input was already epsilon-free (in which case RmEpsilon is a no-op
// preserving everything).
func RmEpsilonProperties(p Properties) Properties {
	if p&NoEpsilonsYes != 0 {
		return p
	}
	out := p & (AcceptorYes | AcceptorNo)
	out |= NoEpsilonsYes | NoIEpsilonsYes | NoOEpsilonsYes
	return out
}

// DeterminizeProperties is the result of Determinize: always
// input-deterministic and epsilon-free on the input side.
func DeterminizeProperties(p Properties) Properties {
	out := p & (AcceptorYes | AcceptorNo | WeightedYes | WeightedNo)
	out |= IDeterministicYes | NoIEpsilonsYes
	return out
}
