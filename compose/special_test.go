package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/compose"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestComposeWithRhoLabelFallsBackToDefaultTransition(t *testing.T) {
	fst1 := buildChain([]fst.Label{5})

	fst2 := fst.NewVectorFst(semiring.TropicalZero)
	fst2.AddState()
	fst2.AddState()
	fst2.SetStart(0)
	const rhoLabel fst.Label = 99
	fst2.AddArc(0, fst.Arc{ILabel: rhoLabel, OLabel: 7, Weight: semiring.TropicalOne, NextState: 1})
	fst2.SetFinal(1, semiring.TropicalOne)

	result, err := compose.Compose(fst1, fst2, compose.WithRhoLabel(rhoLabel))
	require.NoError(t, err)

	s := result.Start()
	require.NotEqual(t, fst.NoStateId, s)
	ai := result.Arcs(s)
	require.False(t, ai.Done(), "fst1's label 5 must fall back onto fst2's rho arc")
	a := ai.Value()
	assert.Equal(t, fst.Label(5), a.ILabel)
	assert.Equal(t, fst.Label(7), a.OLabel, "the rho arc's own output label passes through unchanged")
	assert.True(t, result.Final(a.NextState).ApproxEqual(semiring.TropicalOne, 0))
}

func TestComposeWithSigmaLabelMatchesAlongsideDirectArcs(t *testing.T) {
	fst1 := buildChain([]fst.Label{7})

	fst2 := fst.NewVectorFst(semiring.TropicalZero)
	fst2.AddState()
	fst2.AddState()
	fst2.SetStart(0)
	const sigmaLabel fst.Label = 50
	fst2.AddArc(0, fst.Arc{ILabel: sigmaLabel, OLabel: 3, Weight: semiring.TropicalOne, NextState: 1})
	fst2.SetFinal(1, semiring.TropicalOne)

	result, err := compose.Compose(fst1, fst2, compose.WithSigmaLabel(sigmaLabel))
	require.NoError(t, err)
	assert.True(t, reachesFinal(result), "fst1's label 7 must match fst2's sigma arc")
}

func TestComposeWithPhiLabelFollowsFailureArc(t *testing.T) {
	fst1 := buildChain([]fst.Label{3})

	fst2 := fst.NewVectorFst(semiring.TropicalZero)
	fst2.AddState()
	fst2.AddState()
	fst2.AddState()
	fst2.SetStart(0)
	const phiLabel fst.Label = 77
	fst2.AddArc(0, fst.Arc{ILabel: phiLabel, OLabel: fst.Epsilon, Weight: semiring.TropicalOne, NextState: 1})
	fst2.AddArc(1, fst.Arc{ILabel: 3, OLabel: 9, Weight: semiring.TropicalOne, NextState: 2})
	fst2.SetFinal(2, semiring.TropicalOne)

	result, err := compose.Compose(fst1, fst2, compose.WithPhiLabel(phiLabel))
	require.NoError(t, err)
	assert.True(t, reachesFinal(result), "fst1's label 3 must reach fst2's direct arc via the phi failure chain")
}

func TestComposeWithPhiLabelRejectsNonExpandedFst2(t *testing.T) {
	_, err := compose.NewComposeFst(buildChain([]fst.Label{1}), composeFstWrapper{buildChain([]fst.Label{1})}, compose.WithPhiLabel(77))
	require.Error(t, err)
	assert.ErrorIs(t, err, compose.ErrNotExpanded)
}

// composeFstWrapper embeds the fst.Fst interface (not the concrete
// *fst.VectorFst) so it exposes only the base Fst methods, none of
// ExpandedFst's — letting WithPhiLabel's type assertion genuinely fail
// without a second from-scratch fst.Fst implementation.
type composeFstWrapper struct {
	fst.Fst
}

func TestComposeWithTrivialFilterOnEpsilonFreeOperands(t *testing.T) {
	a := buildChain([]fst.Label{1, 2, 3})
	b := buildChain([]fst.Label{1, 2, 3})

	result, err := compose.Compose(a, b, compose.WithFilter(compose.NewTrivialFilter()))
	require.NoError(t, err)
	assert.True(t, reachesFinal(result), "TrivialFilter must still accept genuine label matches")
}
