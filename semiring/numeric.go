package semiring

import (
	"math"
	"strconv"
)

// TropicalWeight is the (ℝ∪{+∞}, min, +, +∞, 0) semiring: idempotent, path,
// commutative. This is the default semiring for shortest-path problems.
type TropicalWeight float64

// TropicalZero and TropicalOne are the identity elements, exported so
// callers can build constant arcs without allocating through Zero()/One().
const (
	TropicalZero = TropicalWeight(math.Inf(1))
	TropicalOne  = TropicalWeight(0)
)

func (w TropicalWeight) Plus(other Weight) Weight {
	o, ok := other.(TropicalWeight)
	if !ok {
		return nonMember{}
	}
	if w < o {
		return w
	}
	return o
}

func (w TropicalWeight) Times(other Weight) Weight {
	o, ok := other.(TropicalWeight)
	if !ok {
		return nonMember{}
	}
	if !w.Member() || !o.Member() {
		return TropicalZero
	}
	return w + o
}

func (w TropicalWeight) Zero() Weight { return TropicalZero }
func (w TropicalWeight) One() Weight  { return TropicalOne }
func (w TropicalWeight) Member() bool { return !math.IsNaN(float64(w)) && float64(w) != math.Inf(-1) }
func (w TropicalWeight) Quantize(delta float64) Weight {
	return TropicalWeight(quantizeFloat(float64(w), delta))
}
func (w TropicalWeight) Reverse() Weight { return w }
func (w TropicalWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(TropicalWeight)
	if !ok {
		return false
	}
	return approxEqualFloat(float64(w), float64(o), delta)
}
func (w TropicalWeight) Hash() uint64        { return math.Float64bits(float64(w)) }
func (w TropicalWeight) Properties() Properties {
	return FullSemiring | Commutative | Idempotent | PathProperty
}
func (w TropicalWeight) String() string { return formatFloat(float64(w)) }

// Divide implements Divider for TropicalWeight: since Times is +, Divide is
// subtraction regardless of side (the semiring is commutative).
func (w TropicalWeight) Divide(other Weight, _ DivideSide) Weight {
	o, ok := other.(TropicalWeight)
	if !ok {
		return nonMember{}
	}
	if o == TropicalZero {
		return nonMember{}
	}
	return w - o
}

// LogWeight is the (ℝ∪{+∞}, -log(e^-a+e^-b), +, +∞, 0) semiring: the
// log-probability encoding of the real semiring, commutative but not
// idempotent, not a path semiring.
type LogWeight float64

const (
	LogZero = LogWeight(math.Inf(1))
	LogOne  = LogWeight(0)
)

func (w LogWeight) Plus(other Weight) Weight {
	o, ok := other.(LogWeight)
	if !ok {
		return nonMember{}
	}
	return LogWeight(logSumExp(float64(w), float64(o)))
}

func (w LogWeight) Times(other Weight) Weight {
	o, ok := other.(LogWeight)
	if !ok {
		return nonMember{}
	}
	if !w.Member() || !o.Member() {
		return LogZero
	}
	return w + o
}

func (w LogWeight) Zero() Weight             { return LogZero }
func (w LogWeight) One() Weight              { return LogOne }
func (w LogWeight) Member() bool             { return !math.IsNaN(float64(w)) && float64(w) != math.Inf(-1) }
func (w LogWeight) Quantize(delta float64) Weight {
	return LogWeight(quantizeFloat(float64(w), delta))
}
func (w LogWeight) Reverse() Weight { return w }
func (w LogWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(LogWeight)
	if !ok {
		return false
	}
	return approxEqualFloat(float64(w), float64(o), delta)
}
func (w LogWeight) Hash() uint64           { return math.Float64bits(float64(w)) }
func (w LogWeight) Properties() Properties { return FullSemiring | Commutative }
func (w LogWeight) String() string         { return formatFloat(float64(w)) }

func (w LogWeight) Divide(other Weight, _ DivideSide) Weight {
	o, ok := other.(LogWeight)
	if !ok {
		return nonMember{}
	}
	if o == LogZero {
		return nonMember{}
	}
	return w - o
}

// Log64Weight is the double-precision variant of LogWeight, kept as a
// distinct type so callers that need to mix it with Log64-specific
// algorithms (higher-precision shortest distance accumulation) cannot
// accidentally interoperate with the float LogWeight.
type Log64Weight float64

const (
	Log64Zero = Log64Weight(math.Inf(1))
	Log64One  = Log64Weight(0)
)

func (w Log64Weight) Plus(other Weight) Weight {
	o, ok := other.(Log64Weight)
	if !ok {
		return nonMember{}
	}
	return Log64Weight(logSumExp(float64(w), float64(o)))
}
func (w Log64Weight) Times(other Weight) Weight {
	o, ok := other.(Log64Weight)
	if !ok {
		return nonMember{}
	}
	if !w.Member() || !o.Member() {
		return Log64Zero
	}
	return w + o
}
func (w Log64Weight) Zero() Weight { return Log64Zero }
func (w Log64Weight) One() Weight  { return Log64One }
func (w Log64Weight) Member() bool { return !math.IsNaN(float64(w)) && float64(w) != math.Inf(-1) }
func (w Log64Weight) Quantize(delta float64) Weight {
	return Log64Weight(quantizeFloat(float64(w), delta))
}
func (w Log64Weight) Reverse() Weight { return w }
func (w Log64Weight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(Log64Weight)
	if !ok {
		return false
	}
	return approxEqualFloat(float64(w), float64(o), delta)
}
func (w Log64Weight) Hash() uint64           { return math.Float64bits(float64(w)) }
func (w Log64Weight) Properties() Properties { return FullSemiring | Commutative }
func (w Log64Weight) String() string         { return formatFloat(float64(w)) }
func (w Log64Weight) Divide(other Weight, _ DivideSide) Weight {
	o, ok := other.(Log64Weight)
	if !ok {
		return nonMember{}
	}
	if o == Log64Zero {
		return nonMember{}
	}
	return w - o
}

// RealWeight is the ordinary (ℝ, +, ×, 0, 1) semiring over non-negative
// reals, commutative, not idempotent, not a path semiring.
type RealWeight float64

const (
	RealZero = RealWeight(0)
	RealOne  = RealWeight(1)
)

func (w RealWeight) Plus(other Weight) Weight {
	o, ok := other.(RealWeight)
	if !ok {
		return nonMember{}
	}
	return w + o
}
func (w RealWeight) Times(other Weight) Weight {
	o, ok := other.(RealWeight)
	if !ok {
		return nonMember{}
	}
	return w * o
}
func (w RealWeight) Zero() Weight { return RealZero }
func (w RealWeight) One() Weight  { return RealOne }
func (w RealWeight) Member() bool {
	return !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0) && float64(w) >= 0
}
func (w RealWeight) Quantize(delta float64) Weight {
	return RealWeight(quantizeFloat(float64(w), delta))
}
func (w RealWeight) Reverse() Weight { return w }
func (w RealWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(RealWeight)
	if !ok {
		return false
	}
	return approxEqualFloat(float64(w), float64(o), delta)
}
func (w RealWeight) Hash() uint64           { return math.Float64bits(float64(w)) }
func (w RealWeight) Properties() Properties { return FullSemiring | Commutative }
func (w RealWeight) String() string         { return formatFloat(float64(w)) }
func (w RealWeight) Divide(other Weight, _ DivideSide) Weight {
	o, ok := other.(RealWeight)
	if !ok {
		return nonMember{}
	}
	if o == RealZero {
		return nonMember{}
	}
	return w / o
}

// Real64Weight is the double-precision variant of RealWeight, distinct per
// the same rationale as Log64Weight.
type Real64Weight float64

const (
	Real64Zero = Real64Weight(0)
	Real64One  = Real64Weight(1)
)

func (w Real64Weight) Plus(other Weight) Weight {
	o, ok := other.(Real64Weight)
	if !ok {
		return nonMember{}
	}
	return w + o
}
func (w Real64Weight) Times(other Weight) Weight {
	o, ok := other.(Real64Weight)
	if !ok {
		return nonMember{}
	}
	return w * o
}
func (w Real64Weight) Zero() Weight { return Real64Zero }
func (w Real64Weight) One() Weight  { return Real64One }
func (w Real64Weight) Member() bool {
	return !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0) && float64(w) >= 0
}
func (w Real64Weight) Quantize(delta float64) Weight {
	return Real64Weight(quantizeFloat(float64(w), delta))
}
func (w Real64Weight) Reverse() Weight { return w }
func (w Real64Weight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(Real64Weight)
	if !ok {
		return false
	}
	return approxEqualFloat(float64(w), float64(o), delta)
}
func (w Real64Weight) Hash() uint64           { return math.Float64bits(float64(w)) }
func (w Real64Weight) Properties() Properties { return FullSemiring | Commutative }
func (w Real64Weight) String() string         { return formatFloat(float64(w)) }
func (w Real64Weight) Divide(other Weight, _ DivideSide) Weight {
	o, ok := other.(Real64Weight)
	if !ok {
		return nonMember{}
	}
	if o == Real64Zero {
		return nonMember{}
	}
	return w / o
}

// SignedLogWeight generalizes LogWeight to represent signed reals in log
// space: Value holds -log(|r|) and Negative records the sign of r. Plus
// combines same-sign operands with log-sum-exp and opposite-sign operands
// with a log-difference, per original_source's signed-log semantics.
type SignedLogWeight struct {
	Value    float64
	Negative bool
}

// SignedLogZero and SignedLogOne are the identity elements.
var (
	SignedLogZero = SignedLogWeight{Value: math.Inf(1)}
	SignedLogOne  = SignedLogWeight{Value: 0}
)

func (w SignedLogWeight) Plus(other Weight) Weight {
	o, ok := other.(SignedLogWeight)
	if !ok {
		return nonMember{}
	}
	if w.Negative == o.Negative {
		return SignedLogWeight{Value: logSumExp(w.Value, o.Value), Negative: w.Negative}
	}
	// Opposite signs: subtract the smaller magnitude (larger Value) from
	// the larger magnitude (smaller Value); result sign follows the
	// larger-magnitude operand.
	if w.Value == o.Value {
		return SignedLogOne.zeroLike()
	}
	if w.Value < o.Value {
		return SignedLogWeight{Value: logDiff(w.Value, o.Value), Negative: w.Negative}
	}
	return SignedLogWeight{Value: logDiff(o.Value, w.Value), Negative: o.Negative}
}

// zeroLike returns SignedLogZero; split out so Plus above reads cleanly.
func (w SignedLogWeight) zeroLike() Weight { return SignedLogZero }

func (w SignedLogWeight) Times(other Weight) Weight {
	o, ok := other.(SignedLogWeight)
	if !ok {
		return nonMember{}
	}
	if !w.Member() || !o.Member() {
		return SignedLogZero
	}
	return SignedLogWeight{Value: w.Value + o.Value, Negative: w.Negative != o.Negative}
}

func (w SignedLogWeight) Zero() Weight { return SignedLogZero }
func (w SignedLogWeight) One() Weight  { return SignedLogOne }
func (w SignedLogWeight) Member() bool {
	return !math.IsNaN(w.Value) && w.Value != math.Inf(-1)
}
func (w SignedLogWeight) Quantize(delta float64) Weight {
	return SignedLogWeight{Value: quantizeFloat(w.Value, delta), Negative: w.Negative}
}
func (w SignedLogWeight) Reverse() Weight { return w }
func (w SignedLogWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(SignedLogWeight)
	if !ok {
		return false
	}
	return w.Negative == o.Negative && approxEqualFloat(w.Value, o.Value, delta)
}
func (w SignedLogWeight) Hash() uint64 {
	h := math.Float64bits(w.Value)
	if w.Negative {
		h ^= 0x9e3779b97f4a7c15
	}
	return h
}
func (w SignedLogWeight) Properties() Properties { return FullSemiring | Commutative }
func (w SignedLogWeight) String() string {
	sign := ""
	if w.Negative {
		sign = "-"
	}
	return sign + formatFloat(w.Value)
}
func (w SignedLogWeight) Divide(other Weight, _ DivideSide) Weight {
	o, ok := other.(SignedLogWeight)
	if !ok {
		return nonMember{}
	}
	if o == SignedLogZero {
		return nonMember{}
	}
	return SignedLogWeight{Value: w.Value - o.Value, Negative: w.Negative != o.Negative}
}

// MinMaxWeight implements the (min, max) semiring over a totally ordered
// set: Plus selects the minimum, Times the maximum. Idempotent and path,
// since Plus always returns one of its operands.
type MinMaxWeight float64

const (
	MinMaxZero = MinMaxWeight(math.Inf(1))
	MinMaxOne  = MinMaxWeight(math.Inf(-1))
)

func (w MinMaxWeight) Plus(other Weight) Weight {
	o, ok := other.(MinMaxWeight)
	if !ok {
		return nonMember{}
	}
	if w < o {
		return w
	}
	return o
}
func (w MinMaxWeight) Times(other Weight) Weight {
	o, ok := other.(MinMaxWeight)
	if !ok {
		return nonMember{}
	}
	if w > o {
		return w
	}
	return o
}
func (w MinMaxWeight) Zero() Weight    { return MinMaxZero }
func (w MinMaxWeight) One() Weight     { return MinMaxOne }
func (w MinMaxWeight) Member() bool    { return !math.IsNaN(float64(w)) }
func (w MinMaxWeight) Quantize(delta float64) Weight {
	return MinMaxWeight(quantizeFloat(float64(w), delta))
}
func (w MinMaxWeight) Reverse() Weight { return w }
func (w MinMaxWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(MinMaxWeight)
	if !ok {
		return false
	}
	return approxEqualFloat(float64(w), float64(o), delta)
}
func (w MinMaxWeight) Hash() uint64 { return math.Float64bits(float64(w)) }
func (w MinMaxWeight) Properties() Properties {
	return FullSemiring | Commutative | Idempotent | PathProperty
}
func (w MinMaxWeight) String() string { return formatFloat(float64(w)) }

// --- shared helpers -------------------------------------------------------

// nonMember is returned by arithmetic on mismatched or malformed operands.
// Its Member() is always false, matching §7's "never throws, produces a
// not-a-member value instead" policy.
type nonMember struct{}

func (nonMember) Plus(Weight) Weight            { return nonMember{} }
func (nonMember) Times(Weight) Weight           { return nonMember{} }
func (nonMember) Zero() Weight                  { return nonMember{} }
func (nonMember) One() Weight                   { return nonMember{} }
func (nonMember) Member() bool                  { return false }
func (nonMember) Quantize(float64) Weight       { return nonMember{} }
func (nonMember) Reverse() Weight               { return nonMember{} }
func (nonMember) ApproxEqual(Weight, float64) bool { return false }
func (nonMember) Hash() uint64                  { return 0 }
func (nonMember) Properties() Properties        { return 0 }
func (nonMember) String() string                { return "BadWeight" }

func logSumExp(a, b float64) float64 {
	if math.IsInf(a, 1) {
		return b
	}
	if math.IsInf(b, 1) {
		return a
	}
	if a > b {
		a, b = b, a
	}
	return a - math.Log1p(math.Exp(a-b))
}

// logDiff computes -log(e^-a - e^-b) for a < b, i.e. the log-domain
// subtraction used when combining opposite-signed SignedLogWeight operands.
func logDiff(a, b float64) float64 {
	if math.IsInf(b, 1) {
		return a
	}
	return a - math.Log1p(-math.Exp(a-b))
}

func quantizeFloat(v, delta float64) float64 {
	if delta == 0 || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v/delta) * delta
}

func approxEqualFloat(a, b, delta float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return math.Abs(a-b) <= delta
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
