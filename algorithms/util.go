package algorithms

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// pickZeroFrom recovers a Zero value of f's weight semiring by reading the
// final weight of some state and asking it for its own Zero; falls back to
// the tropical semiring's Zero if f is entirely empty (no state to sample).
func pickZeroFrom(f fst.Fst) semiring.Weight {
	if f.Start() != fst.NoStateId {
		return f.Final(f.Start()).Zero()
	}
	for it := f.States(); !it.Done(); it.Next() {
		return f.Final(it.Value()).Zero()
	}
	return semiring.TropicalZero
}
