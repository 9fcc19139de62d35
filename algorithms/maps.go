package algorithms

import "github.com/wfstgo/wfst/fst"

// Invert swaps ILabel and OLabel on every arc, producing the transducer
// realizing the inverse relation. Trivial but load-bearing: Difference
// needs its subtrahend to behave as a plain acceptor, and round-tripping a
// composition (Invert, Compose, Invert again) is a common idiom for
// reusing one transducer in both translation directions.
func Invert(f fst.Fst) *fst.VectorFst {
	return ArcMap(f, func(a fst.Arc) fst.Arc {
		a.ILabel, a.OLabel = a.OLabel, a.ILabel
		return a
	})
}

// ProjectType selects which side Project keeps.
type ProjectType int

const (
	ProjectInput ProjectType = iota
	ProjectOutput
)

// Project collapses f to an acceptor by copying one label side onto the
// other, per the chosen ProjectType.
func Project(f fst.Fst, keep ProjectType) *fst.VectorFst {
	return ArcMap(f, func(a fst.Arc) fst.Arc {
		if keep == ProjectInput {
			a.OLabel = a.ILabel
		} else {
			a.ILabel = a.OLabel
		}
		return a
	})
}

// Relabel rewrites input labels found in ipairs and output labels found in
// opairs, leaving every label absent from the corresponding map unchanged.
// This is the label-remapping primitive the replace engine's call/return
// label policy uses to keep a spliced-in sub-transducer's non-terminal
// labels distinct from its caller's. It does not touch symbol tables —
// callers that need symbol names kept in sync must update them separately.
func Relabel(f fst.Fst, ipairs, opairs map[fst.Label]fst.Label) *fst.VectorFst {
	return ArcMap(f, func(a fst.Arc) fst.Arc {
		if nl, ok := ipairs[a.ILabel]; ok {
			a.ILabel = nl
		}
		if nl, ok := opairs[a.OLabel]; ok {
			a.OLabel = nl
		}
		return a
	})
}
