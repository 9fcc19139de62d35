package semiring

// ExpectationWeight pairs a base weight W with a value-semiring X whose
// Times implements expectation semantics: Times((w1,x1),(w2,x2)) accumulates
// x1*w2 + x2*w1 in the second component, the standard construction for
// propagating an expectation alongside a probability/weight. Plus remains
// component-wise.
type ExpectationWeight struct {
	W Weight
	X Weight
}

func (e ExpectationWeight) Plus(other Weight) Weight {
	o, ok := other.(ExpectationWeight)
	if !ok {
		return nonMember{}
	}
	return ExpectationWeight{W: e.W.Plus(o.W), X: e.X.Plus(o.X)}
}

func (e ExpectationWeight) Times(other Weight) Weight {
	o, ok := other.(ExpectationWeight)
	if !ok {
		return nonMember{}
	}
	// x = x1*w2 + x2*w1, using the X semiring's Times to multiply by a
	// promoted copy of the scalar: since X and W may be distinct types,
	// this construction requires X to accept W-typed scaling through its
	// own Times when the caller's X wraps W (e.g. ProductWeight{W, W}).
	// Callers combining distinct X/W types must supply an X already scaled
	// appropriately; this package only performs the additive accumulation.
	return ExpectationWeight{
		W: e.W.Times(o.W),
		X: e.X.Times(o.W).Plus(o.X.Times(e.W)),
	}
}

func (e ExpectationWeight) Zero() Weight { return ExpectationWeight{W: e.W.Zero(), X: e.X.Zero()} }
func (e ExpectationWeight) One() Weight  { return ExpectationWeight{W: e.W.One(), X: e.X.Zero()} }
func (e ExpectationWeight) Member() bool { return e.W.Member() && e.X.Member() }
func (e ExpectationWeight) Quantize(delta float64) Weight {
	return ExpectationWeight{W: e.W.Quantize(delta), X: e.X.Quantize(delta)}
}
func (e ExpectationWeight) Reverse() Weight {
	return ExpectationWeight{W: e.W.Reverse(), X: e.X.Reverse()}
}
func (e ExpectationWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(ExpectationWeight)
	if !ok {
		return false
	}
	return e.W.ApproxEqual(o.W, delta) && e.X.ApproxEqual(o.X, delta)
}
func (e ExpectationWeight) Hash() uint64 { return e.W.Hash()*1099511628211 ^ e.X.Hash() }
func (e ExpectationWeight) Properties() Properties {
	return e.W.Properties() & e.X.Properties() &^ PathProperty
}
func (e ExpectationWeight) String() string { return "(" + e.W.String() + ";" + e.X.String() + ")" }
