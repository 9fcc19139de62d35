package semiring

// GallicMode mirrors the StringMode used to build the Gallic weight's
// string component, plus a SHORTEST mode, which builds its string
// component in StringRestrict mode exactly as GallicRestrict does.
type GallicMode int

const (
	GallicLeft GallicMode = iota
	GallicRight
	GallicRestrict
	GallicShortest
)

func (m GallicMode) stringMode() StringMode {
	switch m {
	case GallicRight:
		return StringRight
	case GallicRestrict, GallicShortest:
		return StringRestrict
	default:
		return StringLeft
	}
}

// GallicWeight is Product(StringWeight<Label,mode>, W): the label string
// accumulated on a path paired with the path's base weight, carrying label
// mass alongside numeric weight. No algorithm in this module uses it;
// Determinize works through EncodeMapper instead.
type GallicWeight struct {
	Mode  GallicMode
	Str   StringWeight
	Base  Weight
}

// NewGallicOne returns the identity element for a given mode, parameterised
// by the base semiring's own One (so the caller's numeric semiring is
// threaded through without this package needing to know its concrete type).
func NewGallicOne(mode GallicMode, baseOne Weight) GallicWeight {
	return GallicWeight{Mode: mode, Str: NewStringOne(mode.stringMode()), Base: baseOne}
}

func NewGallicZero(mode GallicMode, baseZero Weight) GallicWeight {
	return GallicWeight{Mode: mode, Str: NewStringZero(mode.stringMode()), Base: baseZero}
}

func (w GallicWeight) Plus(other Weight) Weight {
	o, ok := other.(GallicWeight)
	if !ok || o.Mode != w.Mode {
		return nonMember{}
	}
	s := w.Str.Plus(o.Str)
	sw, ok := s.(StringWeight)
	if !ok {
		return nonMember{}
	}
	return GallicWeight{Mode: w.Mode, Str: sw, Base: w.Base.Plus(o.Base)}
}

func (w GallicWeight) Times(other Weight) Weight {
	o, ok := other.(GallicWeight)
	if !ok || o.Mode != w.Mode {
		return nonMember{}
	}
	s := w.Str.Times(o.Str)
	sw, ok := s.(StringWeight)
	if !ok {
		return nonMember{}
	}
	return GallicWeight{Mode: w.Mode, Str: sw, Base: w.Base.Times(o.Base)}
}
func (w GallicWeight) Zero() Weight { return NewGallicZero(w.Mode, w.Base.Zero()) }
func (w GallicWeight) One() Weight  { return NewGallicOne(w.Mode, w.Base.One()) }
func (w GallicWeight) Member() bool { return w.Base.Member() }
func (w GallicWeight) Quantize(delta float64) Weight {
	// The string component has no natural numeric scale: quantize it only
	// by exact equality (delta==0), per SPEC_FULL.md's Open Question
	// decision #3. The base component uses the caller's delta.
	return GallicWeight{Mode: w.Mode, Str: w.Str, Base: w.Base.Quantize(delta)}
}
func (w GallicWeight) Reverse() Weight {
	s := w.Str.Reverse()
	sw, _ := s.(StringWeight)
	return GallicWeight{Mode: w.Mode, Str: sw, Base: w.Base.Reverse()}
}
func (w GallicWeight) ApproxEqual(other Weight, delta float64) bool {
	o, ok := other.(GallicWeight)
	if !ok || o.Mode != w.Mode {
		return false
	}
	return w.Str.ApproxEqual(o.Str, 0) && w.Base.ApproxEqual(o.Base, delta)
}
func (w GallicWeight) Hash() uint64 { return w.Str.Hash()*1099511628211 ^ w.Base.Hash() }
func (w GallicWeight) Properties() Properties {
	return w.Str.Properties() & w.Base.Properties()
}
func (w GallicWeight) String() string { return w.Str.String() + "/" + w.Base.String() }
