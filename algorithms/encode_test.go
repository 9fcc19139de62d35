package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestEncodeFoldsWeightsAndDecodeRestoresLabels(t *testing.T) {
	f := transducerChain()
	m := algorithms.NewEncodeMapper(true)

	enc := algorithms.Encode(f, m)
	a := firstArc(t, enc, 0)
	assert.Equal(t, a.ILabel, a.OLabel, "encoded fst must be an acceptor")
	assert.True(t, a.Weight.ApproxEqual(semiring.TropicalOne, 0))

	dec := algorithms.Decode(enc, m)
	da := firstArc(t, dec, 0)
	assert.Equal(t, fst.Label(1), da.ILabel)
	assert.Equal(t, fst.Label(2), da.OLabel)
}

func TestEncodeMapperAssignsDistinctLabelsPerPair(t *testing.T) {
	m := algorithms.NewEncodeMapper(false)
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalOne, NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 3, Weight: semiring.TropicalOne, NextState: 2})

	enc := algorithms.Encode(f, m)
	labels := map[fst.Label]bool{}
	for ai := enc.Arcs(0); !ai.Done(); ai.Next() {
		labels[ai.Value().ILabel] = true
	}
	assert.Len(t, labels, 2, "distinct (ILabel,OLabel) pairs must encode to distinct labels")
}
