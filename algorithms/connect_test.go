package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestConnectDropsUnreachableAndDeadEndStates(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState() // 0: start
	f.AddState() // 1: on the accepting path
	f.AddState() // 2: unreachable from start
	f.AddState() // 3: reachable but cannot reach any final state
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 1, Weight: w(1), NextState: 1})
	f.AddArc(0, fst.Arc{ILabel: 2, OLabel: 2, Weight: w(1), NextState: 3})
	f.AddArc(2, fst.Arc{ILabel: 3, OLabel: 3, Weight: w(1), NextState: 1})
	f.SetFinal(1, semiring.TropicalOne)

	c := algorithms.Connect(f)

	assert.Equal(t, 2, c.NumStates())
	assert.True(t, accepts(c, []fst.Label{1}))
}

func TestConnectOnAlreadyTrimFstIsIdentityShaped(t *testing.T) {
	f := buildChain([]fst.Label{1, 2}, semiring.TropicalOne)
	c := algorithms.Connect(f)
	assert.Equal(t, f.NumStates(), c.NumStates())
	assert.True(t, accepts(c, []fst.Label{1, 2}))
}
