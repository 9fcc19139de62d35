package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestTopSortOrdersStatesWithIncreasingArcDestinations(t *testing.T) {
	sorted, err := algorithms.TopSort(diamond())
	assert.NoError(t, err)

	for it := sorted.States(); !it.Done(); it.Next() {
		s := it.Value()
		for ai := sorted.Arcs(s); !ai.Done(); ai.Next() {
			assert.Greater(t, ai.Value().NextState, s)
		}
	}
}

func TestTopSortRejectsCyclicFst(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 1, Weight: w(1), NextState: 1})
	f.AddArc(1, fst.Arc{ILabel: 2, OLabel: 2, Weight: w(1), NextState: 0})
	f.SetFinal(1, semiring.TropicalOne)

	_, err := algorithms.TopSort(f)
	assert.ErrorIs(t, err, algorithms.ErrCyclic)
}
