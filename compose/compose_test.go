package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/compose"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// buildChain constructs a linear acceptor 0 -[labels[0]]-> 1 -[labels[1]]-> ... -> n,
// all transitions weight one, final weight one at the last state.
func buildChain(labels []fst.Label) *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.SetStart(0)
	for i, l := range labels {
		f.AddState()
		f.AddArc(fst.StateId(i), fst.Arc{ILabel: l, OLabel: l, Weight: semiring.TropicalOne, NextState: fst.StateId(i + 1)})
	}
	f.SetFinal(fst.StateId(len(labels)), semiring.TropicalOne)
	return f
}

func TestComposeChainAccepts(t *testing.T) {
	fst1 := buildChain([]fst.Label{1, 2, 3})
	fst2 := buildChain([]fst.Label{1, 2, 3})

	result, err := compose.Compose(fst1, fst2)
	require.NoError(t, err)

	assert.NotEqual(t, fst.NoStateId, result.Start())
	assert.True(t, result.NumStates() > 0)

	// Walk the unique accepting path and confirm the label sequence.
	s := result.Start()
	var got []fst.Label
	for {
		ai := result.Arcs(s)
		if ai.Done() {
			break
		}
		a := ai.Value()
		got = append(got, a.ILabel)
		s = a.NextState
	}
	assert.Equal(t, []fst.Label{1, 2, 3}, got)
	assert.True(t, result.Final(s).ApproxEqual(semiring.TropicalOne, 0))
}

func TestComposeLabelMismatchRejectsNoPath(t *testing.T) {
	fst1 := buildChain([]fst.Label{1, 2})
	fst2 := buildChain([]fst.Label{9, 9})

	result, err := compose.Compose(fst1, fst2)
	require.NoError(t, err)

	// The product's start state exists but has no outgoing arcs, since
	// labels never agree.
	if result.Start() != fst.NoStateId {
		assert.Equal(t, 0, result.NumArcs(result.Start()))
	}
}

func TestComposeWithEpsilonOnOneSide(t *testing.T) {
	// fst1: 0 --eps--> 1 --a--> 2 (final)
	fst1 := fst.NewVectorFst(semiring.TropicalZero)
	fst1.AddState()
	fst1.AddState()
	fst1.AddState()
	fst1.SetStart(0)
	fst1.AddArc(0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.TropicalOne, NextState: 1})
	fst1.AddArc(1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: 2})
	fst1.SetFinal(2, semiring.TropicalOne)

	fst2 := buildChain([]fst.Label{1})

	result, err := compose.Compose(fst1, fst2)
	require.NoError(t, err)
	assert.NotEqual(t, fst.NoStateId, result.Start())

	// Path exists: eps-move then matched symbol 1.
	var reached bool
	for it := result.States(); !it.Done(); it.Next() {
		if result.Final(it.Value()).ApproxEqual(semiring.TropicalOne, 0) {
			reached = true
		}
	}
	assert.True(t, reached, "composition must reach a final state through the epsilon move")
}
