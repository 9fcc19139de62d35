// Package semiring defines the algebraic weight contract shared by every
// transducer, matcher, filter, and graph algorithm in this module, plus a
// catalogue of concrete and composite semirings.
//
// A Weight is a value of a type satisfying a semiring: a commutative,
// associative Plus, an associative Times that distributes over Plus on the
// side(s) the type advertises, and distinguished Zero/One elements. The
// contract is structural (an interface), not nominal: algorithms query a
// weight's advertised Properties() and fail fast on mismatch rather than
// relying on the Go type system to forbid, say, running shortest-path over
// a non-path semiring.
//
//	w := semiring.TropicalWeight(3.0).Plus(semiring.TropicalWeight(1.0))
//	// w == TropicalWeight(1.0) because tropical Plus is min.
//
// Composite constructions (Product, Lexicographic, Power, Gallic,
// Expectation) lift Plus/Times/Properties from their component semirings and
// are themselves Weight values, so they compose without special-casing.
package semiring
