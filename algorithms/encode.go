package algorithms

import "github.com/wfstgo/wfst/fst"

// EncodeMapper implements §4.6.4's Gallic-semiring wiring: it packs each
// arc's (ILabel, OLabel[, Weight]) into a single integer label, so a
// weighted subset-construction algorithm like Determinize — defined over
// acceptors — can run on the encoded transducer, and Decode restores the
// original label pairs afterward (`original_source/fst/encode.h`).
type EncodeMapper struct {
	EncodeWeights bool
	table         []encodeKey
	index         map[encodeKey]fst.Label
}

type encodeKey struct {
	iLabel, oLabel fst.Label
	weight         string
}

// NewEncodeMapper returns an empty mapper; encodeWeights additionally
// folds each arc's weight into its encoded label (required when
// Determinize needs every (label, weight) combination treated as
// distinct), otherwise only the label pair is encoded.
func NewEncodeMapper(encodeWeights bool) *EncodeMapper {
	return &EncodeMapper{EncodeWeights: encodeWeights, index: make(map[encodeKey]fst.Label)}
}

func (m *EncodeMapper) keyOf(a fst.Arc) encodeKey {
	k := encodeKey{iLabel: a.ILabel, oLabel: a.OLabel}
	if m.EncodeWeights {
		k.weight = a.Weight.String()
	}
	return k
}

// encode returns the integer label for a, registering a new one if this
// (label[, weight]) combination has not been seen before.
func (m *EncodeMapper) encode(a fst.Arc) fst.Label {
	k := m.keyOf(a)
	if l, ok := m.index[k]; ok {
		return l
	}
	l := fst.Label(len(m.table) + 1) // +1: keep 0 reserved for Epsilon
	m.table = append(m.table, k)
	m.index[k] = l
	return l
}

// decode returns the original (ILabel, OLabel) for an encoded label; when
// EncodeWeights is set the key also holds the weight's String() form,
// which Decode does not use.
func (m *EncodeMapper) decode(l fst.Label) (encodeKey, bool) {
	if l == fst.Epsilon {
		return encodeKey{}, true
	}
	idx := int(l) - 1
	if idx < 0 || idx >= len(m.table) {
		return encodeKey{}, false
	}
	return m.table[idx], true
}

// Encode rewrites f into an acceptor whose single label per arc is an
// EncodeMapper-assigned integer standing in for the original
// (ILabel, OLabel[, Weight]) combination. Arc weights are left as-is
// unless EncodeWeights is set, in which case they are replaced by One
// (the weight information having moved into the label) so a subsequent
// Determinize treats two arcs with the same labels but different weights
// as genuinely different symbols, not candidates to be Plus-combined.
func Encode(f fst.Fst, m *EncodeMapper) *fst.VectorFst {
	one := pickZeroFrom(f).One()
	return ArcMap(f, func(a fst.Arc) fst.Arc {
		l := m.encode(a)
		w := a.Weight
		if m.EncodeWeights {
			w = one
		}
		return fst.Arc{ILabel: l, OLabel: l, Weight: w, NextState: a.NextState}
	})
}

// Decode reverses Encode's labeling, restoring each arc's original
// (ILabel, OLabel) pair from m's table. The arc's weight is kept as it is:
// after an Encode with m.EncodeWeights set, a decoded arc carries One, not
// its original weight. Arcs whose label m has no record of (e.g. a fresh
// subsequential-label arc Determinize introduced) are passed through
// unchanged.
func Decode(f fst.Fst, m *EncodeMapper) *fst.VectorFst {
	return ArcMap(f, func(a fst.Arc) fst.Arc {
		k, ok := m.decode(a.ILabel)
		if !ok {
			return a
		}
		out := fst.Arc{ILabel: k.iLabel, OLabel: k.oLabel, Weight: a.Weight, NextState: a.NextState}
		return out
	})
}
