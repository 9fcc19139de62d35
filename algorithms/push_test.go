package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestPushToInitialMakesEveryStateSumToOne(t *testing.T) {
	f := diamond()
	pushed, err := algorithms.Push(f, algorithms.PushToInitial)
	assert.NoError(t, err)

	for it := pushed.States(); !it.Done(); it.Next() {
		s := it.Value()
		if pushed.NumArcs(s) == 0 {
			final := pushed.Final(s)
			if !final.ApproxEqual(final.Zero(), 0) {
				assert.True(t, final.ApproxEqual(semiring.TropicalOne, 1e-9), "state %d", s)
			}
			continue
		}
		sum := pushed.Final(s)
		for ai := pushed.Arcs(s); !ai.Done(); ai.Next() {
			sum = sum.Plus(ai.Value().Weight)
		}
		assert.True(t, sum.ApproxEqual(semiring.TropicalOne, 1e-9), "state %d plus-sum should be One, got %v", s, sum)
	}
}

func TestPushToFinalPreservesLanguage(t *testing.T) {
	// PushToFinal is built by pushing the reversed transducer toward its
	// (newly initial) side and reversing back; the reweighting changes
	// individual arc weights but must not change which label sequences are
	// accepted.
	f := diamond()
	pushed, err := algorithms.Push(f, algorithms.PushToFinal)
	assert.NoError(t, err)

	assert.True(t, accepts(pushed, []fst.Label{1, 2}))
	assert.True(t, accepts(pushed, []fst.Label{3, 4}))
	assert.False(t, accepts(pushed, []fst.Label{1, 4}))
}
