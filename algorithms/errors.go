package algorithms

import "errors"

// Sentinel errors returned by package algorithms, matched via errors.Is.
var (
	// ErrEmptyFst indicates an algorithm that requires a start state was
	// given an Fst with none.
	ErrEmptyFst = errors.New("algorithms: fst has no start state")

	// ErrNotPathSemiring indicates ShortestPath was called with a weight
	// type whose Properties() does not advertise semiring.PathProperty.
	ErrNotPathSemiring = errors.New("algorithms: shortest-path requires a path semiring")

	// ErrNotDivider indicates Determinize or Push was called with a weight
	// type that does not implement semiring.Divider.
	ErrNotDivider = errors.New("algorithms: operation requires a weakly-divisible semiring")

	// ErrCyclic indicates TopSort was called on an Fst with a cycle.
	ErrCyclic = errors.New("algorithms: fst is cyclic, no topological order exists")

	// ErrNonTermination indicates ShortestDistance's relaxation loop
	// exceeded its step budget without converging — typically a cyclic
	// input over a semiring that is not k-closed.
	ErrNonTermination = errors.New("algorithms: shortest-distance did not converge within its step budget")

	// ErrNotOutputDeterministic indicates Determinize was given a
	// transducer whose (ILabel, OLabel) pairs diverge in a way the
	// Encode/Decode subset-construction sandwich cannot resolve into a
	// single arc per (state, ILabel) — the transducer is not functional
	// (its output depends on more than just its input), which would require
	// full Gallic-semiring (StringWeight-carrying) determinization to
	// factor correctly, not implemented here.
	ErrNotOutputDeterministic = errors.New("algorithms: determinize requires an output-functional transducer")
)
