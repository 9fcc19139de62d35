package semiring

// DivideSide selects which side of Times a Divide call inverts.
type DivideSide int

const (
	// DivideLeft solves for x in Times(x, b) = a, i.e. x = a / b on the left.
	DivideLeft DivideSide = iota
	// DivideRight solves for x in Times(a, x) = b.
	DivideRight
	// DivideAny is used by commutative semirings where side is immaterial.
	DivideAny
)

// Properties is a bitmask of algebraic facts a semiring advertises about
// itself, queried by algorithms that need specific guarantees (shortest-path
// needs Path; determinize needs commutative + weakly-left-divisible, the
// latter implied by the type implementing Divider).
type Properties uint8

const (
	// LeftSemiring: Times distributes over Plus from the left:
	// c*(a+b) = c*a + c*b.
	LeftSemiring Properties = 1 << iota
	// RightSemiring: (a+b)*c = a*c + b*c.
	RightSemiring
	// Commutative: Times(a,b) == Times(b,a).
	Commutative
	// Idempotent: Plus(a,a) == a.
	Idempotent
	// PathProperty: Plus(a,b) is always one of its two operands. Required
	// by shortest-path (§4.6.3 of the specification this module follows).
	PathProperty
	// KClosed: the semiring satisfies a convergence bound sufficient for
	// generic shortest-distance to terminate on cyclic input.
	KClosed
)

// FullSemiring is the property set of an ordinary ring-like semiring:
// distributive on both sides.
const FullSemiring = LeftSemiring | RightSemiring

// Weight is the algebraic contract every weight type must satisfy. Concrete
// weight types are small value types (floats, strings, tuples) so that
// Weight values are cheap to pass and compare; implementations must not
// carry pointer-identity semantics affecting Plus/Times results.
type Weight interface {
	// Plus is commutative and associative.
	Plus(other Weight) Weight
	// Times is associative and distributes over Plus per Properties().
	Times(other Weight) Weight
	// Zero returns the additive identity / multiplicative annihilator for
	// this weight's semiring (not necessarily equal to the receiver).
	Zero() Weight
	// One returns the multiplicative identity for this weight's semiring.
	One() Weight
	// Member reports whether the receiver is a valid element (excludes
	// NaN / uninitialized states produced by malformed arithmetic).
	Member() bool
	// Quantize coarsens the weight to a delta-grid for approximate
	// equality comparisons. delta == 0 means identity (no coarsening).
	Quantize(delta float64) Weight
	// Reverse is an involution mapping the weight into its reverse
	// semiring; Reverse(Reverse(w)) must equal w.
	Reverse() Weight
	// ApproxEqual compares two weights within an absolute tolerance delta.
	ApproxEqual(other Weight, delta float64) bool
	// Hash returns a value consistent with ApproxEqual at delta==0: equal
	// weights must hash equal. Used as state-table keys (package cache).
	Hash() uint64
	// Properties reports which algebraic guarantees this weight's
	// semiring satisfies.
	Properties() Properties
	// String renders the weight for diagnostics and the text I/O format.
	String() string
}

// Divider is implemented by semirings for which Times has an inverse on at
// least one side. Algorithms (determinize, push) that need Divide assert
// this interface and fail with ErrNotDivider (or, for programmer-error
// contract violations, panic per §7.1) when it is absent.
type Divider interface {
	Weight
	// Divide solves for the missing operand of Times on the requested
	// side. Divide must itself never panic on non-Member input; it
	// returns a non-Member weight instead (see doc.go).
	Divide(other Weight, side DivideSide) Weight
}

// ApproxEqualWeights is a free function wrapping Weight.ApproxEqual that first
// checks the operands share a dynamic type, returning false (not a panic)
// on mismatch — the §7 "never throws; produces non-member instead" policy
// applied at the helper level.
func ApproxEqualWeights(a, b Weight, delta float64) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ApproxEqual(b, delta)
}
