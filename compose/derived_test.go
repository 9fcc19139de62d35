package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/compose"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestIntersectAcceptsSharedLanguage(t *testing.T) {
	a := buildChain([]fst.Label{1, 2, 3})
	b := buildChain([]fst.Label{1, 2, 3})

	result, err := compose.Intersect(a, b)
	require.NoError(t, err)

	var reached bool
	for it := result.States(); !it.Done(); it.Next() {
		if result.Final(it.Value()).ApproxEqual(semiring.TropicalOne, 0) {
			reached = true
		}
	}
	assert.True(t, reached, "identical acceptors must intersect to a non-empty language")
}

// TestIntersectTreatsEpsilonSymmetrically builds an operand pair where only
// one side has a (unilateral) epsilon arc, and checks that MatchFilter
// rejects it from both call orders. Before the symmetric-sentinel fix, the
// side passed as fst1 got its epsilon move for free (treated as always
// matching) while the same operand passed as fst2 always had its epsilon
// move blocked — so Intersect(eps, noeps) and Intersect(noeps, eps) returned
// different answers for the same pair of languages.
func TestIntersectTreatsEpsilonSymmetrically(t *testing.T) {
	withEps := fst.NewVectorFst(semiring.TropicalZero)
	withEps.AddState()
	withEps.AddState()
	withEps.AddState()
	withEps.SetStart(0)
	withEps.AddArc(0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.TropicalOne, NextState: 1})
	withEps.AddArc(1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: 2})
	withEps.SetFinal(2, semiring.TropicalOne)

	noEps := buildChain([]fst.Label{1})

	forward, err := compose.Intersect(withEps, noEps)
	require.NoError(t, err)
	backward, err := compose.Intersect(noEps, withEps)
	require.NoError(t, err)

	assert.False(t, reachesFinal(forward), "Intersect(withEps, noEps) must not let the epsilon move through for free")
	assert.False(t, reachesFinal(backward), "Intersect(noEps, withEps) must agree with the other call order")
}

func reachesFinal(f *fst.VectorFst) bool {
	for it := f.States(); !it.Done(); it.Next() {
		if f.Final(it.Value()).ApproxEqual(semiring.TropicalOne, 0) {
			return true
		}
	}
	return false
}

func TestComplementFlipsFinalityAndCompletesAlphabet(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero)
	f.AddState()
	f.AddState()
	f.SetStart(0)
	f.AddArc(0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: 1})
	f.SetFinal(1, semiring.TropicalOne)

	alphabet := []fst.Label{1, 2}
	comp := compose.Complement(f, alphabet, semiring.TropicalOne)

	// State 0 was non-final (rejects the empty string); complement accepts it.
	assert.True(t, comp.Final(0).ApproxEqual(semiring.TropicalOne, 0))
	// State 1 was final (accepted "1"); complement rejects it.
	assert.True(t, comp.Final(1).ApproxEqual(semiring.TropicalZero, 0))
	// State 0 gained a completion arc for the missing label 2.
	assert.Equal(t, 2, comp.NumArcs(0))
	// State 1 had no arcs at all; it gains completion arcs for both labels.
	assert.Equal(t, 2, comp.NumArcs(1))
}

func TestDifferenceAcceptsOnlyFst1Minority(t *testing.T) {
	accepts1 := buildChain([]fst.Label{1})
	accepts2 := buildChain([]fst.Label{2})

	diff, err := compose.Difference(accepts1, accepts2, []fst.Label{1, 2}, semiring.TropicalOne)
	require.NoError(t, err)

	assert.True(t, reachesFinal(diff), "difference must still accept what fst1 accepts and fst2 doesn't")
}
