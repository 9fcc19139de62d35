package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func buildAcceptor(pairs [][3]int64) *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	maxState := int64(0)
	for _, p := range pairs {
		if p[0] > maxState {
			maxState = p[0]
		}
		if p[1] > maxState {
			maxState = p[1]
		}
	}
	for i := int64(0); i <= maxState; i++ {
		f.AddState()
	}
	f.SetStart(0)
	for _, p := range pairs {
		f.AddArc(fst.StateId(p[0]), fst.Arc{
			ILabel: fst.Label(p[2]), OLabel: fst.Label(p[2]),
			Weight: semiring.TropicalWeight(1), NextState: fst.StateId(p[1]),
		})
	}
	f.SetFinal(fst.StateId(maxState), semiring.TropicalOne)
	return f
}

func TestVectorFstBasics(t *testing.T) {
	f := buildAcceptor([][3]int64{{0, 1, 1}, {1, 2, 2}})
	assert.Equal(t, fst.StateId(0), f.Start())
	assert.Equal(t, 3, f.NumStates())
	assert.Equal(t, 1, f.NumArcs(0))
	assert.True(t, f.Final(2).ApproxEqual(semiring.TropicalOne, 0))
	assert.True(t, f.Final(0).ApproxEqual(semiring.TropicalZero, 0))
}

func TestEmptyVectorFstProperties(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	p := f.Properties(fst.AllTrinary, true)
	assert.NotZero(t, p&fst.AcceptorYes)
	assert.NotZero(t, p&fst.TopSortedYes)
	assert.NotZero(t, p&fst.CyclicNo)
	assert.NotZero(t, p&fst.WeightedNo)
	assert.NotZero(t, p&fst.NoEpsilonsYes)
	assert.NotZero(t, p&fst.IDeterministicYes)
	assert.NotZero(t, p&fst.ODeterministicYes)
}

func TestAddArcClearsSortedWhenOutOfOrder(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 5, OLabel: 5, Weight: semiring.TropicalOne, NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne, NextState: 2})
	p := f.Properties(fst.ILabelSortedYes|fst.ILabelSortedNo, true)
	assert.NotZero(t, p&fst.ILabelSortedNo)
}

func TestDeleteStatesRenumbersAndDropsDanglingArcs(t *testing.T) {
	f := buildAcceptor([][3]int64{{0, 1, 1}, {1, 2, 2}})
	f.DeleteStates([]fst.StateId{1})
	require.Equal(t, 2, f.NumStates())
	assert.Equal(t, 0, f.NumArcs(0), "arc into the deleted state must be gone")
}

func TestCastToConstFstPreservesTopology(t *testing.T) {
	f := buildAcceptor([][3]int64{{0, 1, 1}, {1, 2, 2}})
	cf := fst.Cast(f)
	assert.Equal(t, f.NumStates(), cf.NumStates())
	assert.Equal(t, f.NumArcs(0), cf.NumArcs(0))
	assert.True(t, cf.Final(2).ApproxEqual(semiring.TropicalOne, 0))
}

func TestCompactFstRoundTrips(t *testing.T) {
	f := buildAcceptor([][3]int64{{0, 1, 1}, {1, 2, 2}})
	compactor := fst.NewStringCompactor(semiring.TropicalZero)
	require.True(t, compactor.Compatible(f))
	cf := fst.NewCompactFst(f, compactor)
	var got []fst.Arc
	for ai := cf.Arcs(0); !ai.Done(); ai.Next() {
		got = append(got, ai.Value())
	}
	require.Len(t, got, 1)
	assert.Equal(t, fst.Label(1), got[0].ILabel)
}

func TestArcSortInput(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 5, OLabel: 5, Weight: semiring.TropicalOne, NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne, NextState: 2})
	fst.ArcSortInput(f)

	var labels []fst.Label
	for ai := f.Arcs(0); !ai.Done(); ai.Next() {
		labels = append(labels, ai.Value().ILabel)
	}
	assert.Equal(t, []fst.Label{2, 5}, labels)
}
