package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func transducerChain() *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 2, Weight: w(1), NextState: 1})
	f.SetFinal(1, semiring.TropicalOne)
	return f
}

func TestInvertSwapsLabels(t *testing.T) {
	f := transducerChain()
	inv := algorithms.Invert(f)
	a := firstArc(t, inv, 0)
	assert.Equal(t, fst.Label(2), a.ILabel)
	assert.Equal(t, fst.Label(1), a.OLabel)
}

func TestProjectInputCollapsesToAcceptor(t *testing.T) {
	f := transducerChain()
	p := algorithms.Project(f, algorithms.ProjectInput)
	a := firstArc(t, p, 0)
	assert.Equal(t, a.ILabel, a.OLabel)
	assert.Equal(t, fst.Label(1), a.ILabel)
}

func TestRelabelRewritesOnlyMappedLabels(t *testing.T) {
	f := transducerChain()
	r := algorithms.Relabel(f, map[fst.Label]fst.Label{1: 99}, map[fst.Label]fst.Label{2: 98})
	a := firstArc(t, r, 0)
	assert.Equal(t, fst.Label(99), a.ILabel)
	assert.Equal(t, fst.Label(98), a.OLabel)
}

func firstArc(t *testing.T, f fst.Fst, s fst.StateId) fst.Arc {
	t.Helper()
	ai := f.Arcs(s)
	assert.False(t, ai.Done())
	return ai.Value()
}
