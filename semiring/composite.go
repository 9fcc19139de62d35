package semiring

// ProductWeight is the component-wise Product(W1, W2) semiring: Plus and
// Times apply independently to each component.
type ProductWeight struct {
	W1 Weight
	W2 Weight
}

func (w ProductWeight) Plus(other Weight) Weight {
	o, ok := other.(ProductWeight)
	if !ok {
		return nonMember{}
	}
	return ProductWeight{W1: w.W1.Plus(o.W1), W2: w.W2.Plus(o.W2)}
}
func (w ProductWeight) Times(other Weight) Weight {
	o, ok := other.(ProductWeight)
	if !ok {
		return nonMember{}
	}
	return ProductWeight{W1: w.W1.Times(o.W1), W2: w.W2.Times(o.W2)}
}
func (w ProductWeight) Zero() Weight { return ProductWeight{W1: w.W1.Zero(), W2: w.W2.Zero()} }
func (w ProductWeight) One() Weight  { return ProductWeight{W1: w.W1.One(), W2: w.W2.One()} }
func (w ProductWeight) Member() bool { return w.W1.Member() && w.W2.Member() }
func (w ProductWeight) Quantize(delta float64) Weight {
	return ProductWeight{W1: w.W1.Quantize(delta), W2: w.W2.Quantize(delta)}
}
func (w ProductWeight) Reverse() Weight {
	return ProductWeight{W1: w.W1.Reverse(), W2: w.W2.Reverse()}
}
func (w ProductWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(ProductWeight)
	if !ok {
		return false
	}
	return w.W1.ApproxEqual(o.W1, delta) && w.W2.ApproxEqual(o.W2, delta)
}
func (w ProductWeight) Hash() uint64 { return w.W1.Hash()*1099511628211 ^ w.W2.Hash() }
func (w ProductWeight) Properties() Properties {
	return w.W1.Properties() & w.W2.Properties()
}
func (w ProductWeight) String() string { return "(" + w.W1.String() + "," + w.W2.String() + ")" }

// LexicographicWeight compares lexicographically by W1 then W2. Plus picks
// the operand that is smaller in the W1 component's Plus-ordering (i.e.
// Plus(a,b)==a iff a.W1 == a.W1.Plus(b.W1) and, on a tie, similarly for W2);
// both component semirings must be path semirings (Plus selects an
// operand); nothing in this module checks that for a given pair of
// component types.
//
// Members are constrained so that either both components are Zero or both
// are non-Zero (a mixed pair is not a valid Lexicographic element and
// Member reports false for it).
type LexicographicWeight struct {
	W1 Weight
	W2 Weight
}

func (w LexicographicWeight) isZeroPair() bool {
	return w.W1.ApproxEqual(w.W1.Zero(), 0) && w.W2.ApproxEqual(w.W2.Zero(), 0)
}

func (w LexicographicWeight) Plus(other Weight) Weight {
	o, ok := other.(LexicographicWeight)
	if !ok {
		return nonMember{}
	}
	// Plus(a,b) = a if a.W1 "<=" b.W1 strictly wins via Plus selecting a;
	// tie on W1 breaks by W2.
	p1 := w.W1.Plus(o.W1)
	if p1.ApproxEqual(w.W1, 0) && !p1.ApproxEqual(o.W1, 0) {
		return w
	}
	if p1.ApproxEqual(o.W1, 0) && !p1.ApproxEqual(w.W1, 0) {
		return o
	}
	// Tie on W1 (or both sides equal it): break by W2.
	p2 := w.W2.Plus(o.W2)
	if p2.ApproxEqual(w.W2, 0) {
		return w
	}
	return o
}

func (w LexicographicWeight) Times(other Weight) Weight {
	o, ok := other.(LexicographicWeight)
	if !ok {
		return nonMember{}
	}
	return LexicographicWeight{W1: w.W1.Times(o.W1), W2: w.W2.Times(o.W2)}
}
func (w LexicographicWeight) Zero() Weight {
	return LexicographicWeight{W1: w.W1.Zero(), W2: w.W2.Zero()}
}
func (w LexicographicWeight) One() Weight {
	return LexicographicWeight{W1: w.W1.One(), W2: w.W2.One()}
}
func (w LexicographicWeight) Member() bool {
	if !w.W1.Member() || !w.W2.Member() {
		return false
	}
	z1 := w.W1.ApproxEqual(w.W1.Zero(), 0)
	z2 := w.W2.ApproxEqual(w.W2.Zero(), 0)
	return z1 == z2
}
func (w LexicographicWeight) Quantize(delta float64) Weight {
	return LexicographicWeight{W1: w.W1.Quantize(delta), W2: w.W2.Quantize(delta)}
}
func (w LexicographicWeight) Reverse() Weight {
	return LexicographicWeight{W1: w.W1.Reverse(), W2: w.W2.Reverse()}
}
func (w LexicographicWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(LexicographicWeight)
	if !ok {
		return false
	}
	return w.W1.ApproxEqual(o.W1, delta) && w.W2.ApproxEqual(o.W2, delta)
}
func (w LexicographicWeight) Hash() uint64 { return w.W1.Hash()*1099511628211 ^ w.W2.Hash() }
func (w LexicographicWeight) Properties() Properties {
	return (w.W1.Properties() & w.W2.Properties()) | PathProperty
}
func (w LexicographicWeight) String() string {
	return "(" + w.W1.String() + ";" + w.W2.String() + ")"
}

// PowerWeight is the fixed-size Cartesian power W^N.
type PowerWeight struct {
	Components []Weight
}

func NewPowerWeight(components ...Weight) PowerWeight {
	cp := make([]Weight, len(components))
	copy(cp, components)
	return PowerWeight{Components: cp}
}

func (w PowerWeight) elementwise(other Weight, op func(a, b Weight) Weight) Weight {
	o, ok := other.(PowerWeight)
	if !ok || len(o.Components) != len(w.Components) {
		return nonMember{}
	}
	out := make([]Weight, len(w.Components))
	for i := range w.Components {
		out[i] = op(w.Components[i], o.Components[i])
	}
	return PowerWeight{Components: out}
}

func (w PowerWeight) Plus(other Weight) Weight {
	return w.elementwise(other, func(a, b Weight) Weight { return a.Plus(b) })
}
func (w PowerWeight) Times(other Weight) Weight {
	return w.elementwise(other, func(a, b Weight) Weight { return a.Times(b) })
}
func (w PowerWeight) Zero() Weight {
	out := make([]Weight, len(w.Components))
	for i, c := range w.Components {
		out[i] = c.Zero()
	}
	return PowerWeight{Components: out}
}
func (w PowerWeight) One() Weight {
	out := make([]Weight, len(w.Components))
	for i, c := range w.Components {
		out[i] = c.One()
	}
	return PowerWeight{Components: out}
}
func (w PowerWeight) Member() bool {
	for _, c := range w.Components {
		if !c.Member() {
			return false
		}
	}
	return true
}
func (w PowerWeight) Quantize(delta float64) Weight {
	out := make([]Weight, len(w.Components))
	for i, c := range w.Components {
		out[i] = c.Quantize(delta)
	}
	return PowerWeight{Components: out}
}
func (w PowerWeight) Reverse() Weight {
	out := make([]Weight, len(w.Components))
	for i, c := range w.Components {
		out[i] = c.Reverse()
	}
	return PowerWeight{Components: out}
}
func (w PowerWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(PowerWeight)
	if !ok || len(o.Components) != len(w.Components) {
		return false
	}
	for i := range w.Components {
		if !w.Components[i].ApproxEqual(o.Components[i], delta) {
			return false
		}
	}
	return true
}
func (w PowerWeight) Hash() uint64 {
	var h uint64 = 1469598103934665603
	for _, c := range w.Components {
		h ^= c.Hash()
		h *= 1099511628211
	}
	return h
}
func (w PowerWeight) Properties() Properties {
	if len(w.Components) == 0 {
		return FullSemiring | Commutative | Idempotent | PathProperty | KClosed
	}
	p := w.Components[0].Properties()
	for _, c := range w.Components[1:] {
		p &= c.Properties()
	}
	return p
}
func (w PowerWeight) String() string {
	s := "<"
	for i, c := range w.Components {
		if i > 0 {
			s += ","
		}
		s += c.String()
	}
	return s + ">"
}

// SparsePowerWeight is a Cartesian power indexed by a sparse key set K
// (e.g. int), storing only non-Zero entries; components absent from the map
// are implicitly Zero (identityZero supplies the per-index Zero() value
// since indices can carry distinct component semirings in principle — here
// all indices share one semiring, identified by Zero/One on construction).
type SparsePowerWeight struct {
	Entries map[int64]Weight
	zero    Weight // template for absent entries' Zero/One
}

func NewSparsePowerWeight(zeroTemplate Weight, entries map[int64]Weight) SparsePowerWeight {
	cp := make(map[int64]Weight, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return SparsePowerWeight{Entries: cp, zero: zeroTemplate}
}

func (w SparsePowerWeight) get(k int64) Weight {
	if v, ok := w.Entries[k]; ok {
		return v
	}
	return w.zero.Zero()
}

func (w SparsePowerWeight) Plus(other Weight) Weight {
	o, ok := other.(SparsePowerWeight)
	if !ok {
		return nonMember{}
	}
	out := make(map[int64]Weight)
	seen := make(map[int64]bool)
	for k := range w.Entries {
		seen[k] = true
	}
	for k := range o.Entries {
		seen[k] = true
	}
	for k := range seen {
		v := w.get(k).Plus(o.get(k))
		if !v.ApproxEqual(w.zero.Zero(), 0) {
			out[k] = v
		}
	}
	return SparsePowerWeight{Entries: out, zero: w.zero}
}
func (w SparsePowerWeight) Times(other Weight) Weight {
	o, ok := other.(SparsePowerWeight)
	if !ok {
		return nonMember{}
	}
	out := make(map[int64]Weight)
	for k := range w.Entries {
		if _, ok := o.Entries[k]; ok {
			out[k] = w.get(k).Times(o.get(k))
		}
	}
	return SparsePowerWeight{Entries: out, zero: w.zero}
}
func (w SparsePowerWeight) Zero() Weight {
	return SparsePowerWeight{Entries: map[int64]Weight{}, zero: w.zero}
}
func (w SparsePowerWeight) One() Weight {
	return SparsePowerWeight{Entries: map[int64]Weight{}, zero: w.zero}
}
func (w SparsePowerWeight) Member() bool {
	for _, v := range w.Entries {
		if !v.Member() {
			return false
		}
	}
	return true
}
func (w SparsePowerWeight) Quantize(delta float64) Weight {
	out := make(map[int64]Weight, len(w.Entries))
	for k, v := range w.Entries {
		out[k] = v.Quantize(delta)
	}
	return SparsePowerWeight{Entries: out, zero: w.zero}
}
func (w SparsePowerWeight) Reverse() Weight {
	out := make(map[int64]Weight, len(w.Entries))
	for k, v := range w.Entries {
		out[k] = v.Reverse()
	}
	return SparsePowerWeight{Entries: out, zero: w.zero}
}
func (w SparsePowerWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(SparsePowerWeight)
	if !ok || len(w.Entries) != len(o.Entries) {
		return false
	}
	for k, v := range w.Entries {
		ov, ok := o.Entries[k]
		if !ok || !v.ApproxEqual(ov, delta) {
			return false
		}
	}
	return true
}
func (w SparsePowerWeight) Hash() uint64 {
	var h uint64 = 1469598103934665603
	for k, v := range w.Entries {
		h ^= uint64(k)*1099511628211 ^ v.Hash()
	}
	return h
}
func (w SparsePowerWeight) Properties() Properties {
	return w.zero.Properties()
}
func (w SparsePowerWeight) String() string { return "sparse-power" }
