package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestRmEpsilonRemovesAllEpsilonArcsButKeepsLanguage(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState() // 0
	f.AddState() // 1
	f.AddState() // 2
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: w(1), NextState: 1})
	f.AddArc(1, fst.Arc{ILabel: 5, OLabel: 5, Weight: w(2), NextState: 2})
	f.SetFinal(2, semiring.TropicalOne)

	out := algorithms.RmEpsilon(f)

	for it := out.States(); !it.Done(); it.Next() {
		for ai := out.Arcs(it.Value()); !ai.Done(); ai.Next() {
			a := ai.Value()
			assert.False(t, a.ILabel == fst.Epsilon && a.OLabel == fst.Epsilon)
		}
	}
	assert.True(t, accepts(out, []fst.Label{5}))

	d, err := algorithms.ShortestDistance(out)
	assert.NoError(t, err)
	var best semiring.Weight = semiring.TropicalZero
	for it := out.States(); !it.Done(); it.Next() {
		s := it.Value()
		final := out.Final(s)
		if final.ApproxEqual(final.Zero(), 0) {
			continue
		}
		best = best.Plus(d[s].Times(final))
	}
	assert.InDelta(t, 3, float64(best.(semiring.TropicalWeight)), 1e-9)
}
