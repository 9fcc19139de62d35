package cache

import (
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// Entry is the per-state cache record a delayed Fst materializes once an
// algorithm first visits that state: its expanded arc list, final weight,
// and whether expansion has completed (a delayed Fst may discover a state's
// final weight before it has finished enumerating all of its arcs, or vice
// versa, depending on the combinator).
type Entry struct {
	Arcs       []fst.Arc
	Final      semiring.Weight
	ArcsDone   bool
	FinalKnown bool

	pins int // open ArcIterators referencing this entry; GC skips pins > 0
}

// byteSize estimates this entry's heap footprint for the GC byte budget.
// The estimate is deliberately coarse (a fixed per-arc cost plus the slice
// header) — exact accounting would require reflect.TypeOf on every Weight
// implementation, which is far more machinery than a soft eviction budget
// warrants.
func (e *Entry) byteSize() uint64 {
	const perArc = 64 // ilabel+olabel+weight-interface+nextstate, rounded up
	const fixed = 32  // entry header, final weight interface, bookkeeping
	return fixed + uint64(len(e.Arcs))*perArc
}

// Pinned reports whether this entry currently has an open ArcIterator
// keeping it alive against GC eviction.
func (e *Entry) Pinned() bool { return e.pins > 0 }
