package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// branchy has two states both reachable from start via an epsilon-free
// nondeterministic choice: two arcs labeled 1 leaving state 0, landing on
// two different states that both carry an arc labeled 2 to a shared final
// state. A determinized copy must still accept exactly "1 2" and must not
// have two arcs labeled 1 leaving the same state.
func branchy() *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 1, Weight: w(1), NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 1, Weight: w(3), NextState: 2})
	f.AddArc(1, fst.Arc{ILabel: 2, OLabel: 2, Weight: w(1), NextState: 3})
	f.AddArc(2, fst.Arc{ILabel: 2, OLabel: 2, Weight: w(1), NextState: 3})
	f.SetFinal(3, semiring.TropicalOne)
	return f
}

func TestDeterminizeMergesParallelArcsAndKeepsLanguage(t *testing.T) {
	det, err := algorithms.Determinize(branchy())
	assert.NoError(t, err)

	seen := map[fst.Label]int{}
	for ai := det.Arcs(det.Start()); !ai.Done(); ai.Next() {
		seen[ai.Value().ILabel]++
	}
	for l, n := range seen {
		assert.Equal(t, 1, n, "label %d must appear on at most one arc per state after determinize", l)
	}
	assert.True(t, accepts(det, []fst.Label{1, 2}))
}

// branchyTransducer mirrors branchy but with ILabel != OLabel on every arc,
// exercising Determinize's Encode/Decode sandwich for a genuine transducer
// rather than an acceptor. Both parallel arcs out of state 0 translate
// input 1 to output 10 (same output, different weight), so the transducer
// is output-functional and Determinize must succeed.
func branchyTransducer() *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 10, Weight: w(1), NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 10, Weight: w(3), NextState: 2})
	f.AddArc(1, fst.Arc{ILabel: 2, OLabel: 20, Weight: w(1), NextState: 3})
	f.AddArc(2, fst.Arc{ILabel: 2, OLabel: 20, Weight: w(1), NextState: 3})
	f.SetFinal(3, semiring.TropicalOne)
	return f
}

func TestDeterminizeRoutesTransducersThroughEncodeDecode(t *testing.T) {
	det, err := algorithms.Determinize(branchyTransducer())
	require.NoError(t, err)

	seen := map[fst.Label]int{}
	var outLabel fst.Label = -999
	for ai := det.Arcs(det.Start()); !ai.Done(); ai.Next() {
		a := ai.Value()
		seen[a.ILabel]++
		if a.ILabel == 1 {
			outLabel = a.OLabel
		}
	}
	for l, n := range seen {
		assert.Equal(t, 1, n, "label %d must appear on at most one arc per state after determinize", l)
	}
	assert.Equal(t, fst.Label(10), outLabel, "the merged arc must keep its original output label, not collapse to the input label")
	assert.True(t, accepts(det, []fst.Label{1, 2}))
}

// divergentOutputTransducer has two arcs sharing an (state, ILabel) pair
// but disagreeing on OLabel — genuinely not output-functional, so
// Determinize cannot make it input-deterministic via Encode/Decode alone.
func divergentOutputTransducer() *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 10, Weight: w(1), NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 20, Weight: w(1), NextState: 2})
	f.SetFinal(1, semiring.TropicalOne)
	f.SetFinal(2, semiring.TropicalOne)
	return f
}

func TestDeterminizeRejectsNonOutputFunctionalTransducer(t *testing.T) {
	_, err := algorithms.Determinize(divergentOutputTransducer())
	require.Error(t, err)
	assert.ErrorIs(t, err, algorithms.ErrNotOutputDeterministic)
}

func TestDeterminizeOnNonDividerSemiringFails(t *testing.T) {
	zero := semiring.NewStringZero(semiring.StringLeft)
	f := fst.NewVectorFst(zero)
	f.AddState()
	f.SetStart(0)
	f.SetFinal(0, semiring.NewStringOne(semiring.StringLeft))

	_, err := algorithms.Determinize(f)
	assert.ErrorIs(t, err, algorithms.ErrNotDivider)
}
