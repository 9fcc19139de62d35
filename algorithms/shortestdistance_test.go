package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// diamond builds: 0 -1/1-> 1 -2/1-> 3 (cost 2 total)
//                 0 -3/5-> 2 -4/1-> 3 (cost 6 total)
// so the tropical (min-plus) shortest distance to state 3 is 2.
func diamond() *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 1, Weight: w(1), NextState: 1})
	f.AddArc(1, fst.Arc{ILabel: 2, OLabel: 2, Weight: w(1), NextState: 3})
	f.AddArc(0, fst.Arc{ILabel: 3, OLabel: 3, Weight: w(5), NextState: 2})
	f.AddArc(2, fst.Arc{ILabel: 4, OLabel: 4, Weight: w(1), NextState: 3})
	f.SetFinal(3, semiring.TropicalOne)
	return f
}

func TestShortestDistanceTropicalPicksMinPath(t *testing.T) {
	d, err := algorithms.ShortestDistance(diamond())
	assert.NoError(t, err)
	assert.InDelta(t, 0, float64(d[0].(semiring.TropicalWeight)), 1e-9)
	assert.InDelta(t, 2, float64(d[3].(semiring.TropicalWeight)), 1e-9)
}

func TestShortestDistanceQueueDisciplinesAgree(t *testing.T) {
	for _, kind := range []algorithms.QueueKind{
		algorithms.QueueFIFO,
		algorithms.QueueLIFO,
		algorithms.QueueStateOrder,
		algorithms.QueueShortestFirst,
	} {
		d, err := algorithms.ShortestDistance(diamond(), algorithms.WithQueue(kind))
		assert.NoError(t, err)
		assert.InDelta(t, 2, float64(d[3].(semiring.TropicalWeight)), 1e-9, "queue kind %v", kind)
	}
}

func TestShortestDistanceOnEmptyFstReturnsNil(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	d, err := algorithms.ShortestDistance(f)
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestShortestDistanceNonTerminationOnTightBudget(t *testing.T) {
	_, err := algorithms.ShortestDistance(diamond(), algorithms.WithMaxSteps(1))
	assert.ErrorIs(t, err, algorithms.ErrNonTermination)
}
