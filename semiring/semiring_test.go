package semiring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/semiring"
)

func TestTropicalIdentities(t *testing.T) {
	a := semiring.TropicalWeight(3.5)

	assert.Equal(t, a, a.Plus(semiring.TropicalZero))
	assert.Equal(t, a, a.Times(semiring.TropicalOne))
	assert.Equal(t, semiring.TropicalZero, a.Times(semiring.TropicalZero))
}

func TestTropicalIsPathAndIdempotent(t *testing.T) {
	a := semiring.TropicalWeight(1)
	b := semiring.TropicalWeight(5)

	p := a.Properties()
	require.NotZero(t, p&semiring.PathProperty)
	require.NotZero(t, p&semiring.Idempotent)

	got := a.Plus(b)
	assert.True(t, got == a || got == b, "Plus must select an operand for a path semiring")
	assert.Equal(t, a, a.Plus(a))
}

func TestTropicalDivideInvertsTimes(t *testing.T) {
	a := semiring.TropicalWeight(4)
	b := semiring.TropicalWeight(9)
	product := a.Times(b).(semiring.TropicalWeight)

	quot := product.Divide(b, semiring.DivideAny)
	assert.Equal(t, a, quot)
}

func TestLogPlusIsCommutativeNotIdempotent(t *testing.T) {
	a := semiring.LogWeight(2)
	b := semiring.LogWeight(5)

	assert.Equal(t, a.Plus(b), b.Plus(a))
	assert.NotEqual(t, a, a.Plus(a)) // log-sum-exp(a,a) != a for a != Zero
}

func TestReverseInvolution(t *testing.T) {
	weights := []semiring.Weight{
		semiring.TropicalWeight(7),
		semiring.LogWeight(3),
		semiring.NewString(semiring.StringLeft, 1, 2, 3),
	}
	for _, w := range weights {
		rr := w.Reverse().Reverse()
		assert.True(t, w.ApproxEqual(rr, 1e-9), "Reverse(Reverse(w)) must equal w for %v", w)
	}
}

func TestStringWeightPlusIsLongestCommonPrefix(t *testing.T) {
	a := semiring.NewString(semiring.StringLeft, 1, 2, 3)
	b := semiring.NewString(semiring.StringLeft, 1, 2, 4)

	got := a.Plus(b).(semiring.StringWeight)
	assert.Equal(t, []int64{1, 2}, got.Labels)
}

func TestStringWeightRestrictRequiresEquality(t *testing.T) {
	a := semiring.NewString(semiring.StringRestrict, 1, 2)
	b := semiring.NewString(semiring.StringRestrict, 1, 3)

	got := a.Plus(b).(semiring.StringWeight)
	assert.True(t, got.IsZero)

	same := a.Plus(a).(semiring.StringWeight)
	assert.False(t, same.IsZero)
	assert.Equal(t, a.Labels, same.Labels)
}

func TestProductWeightComponentwise(t *testing.T) {
	a := semiring.ProductWeight{W1: semiring.TropicalWeight(1), W2: semiring.TropicalWeight(10)}
	b := semiring.ProductWeight{W1: semiring.TropicalWeight(2), W2: semiring.TropicalWeight(20)}

	sum := a.Plus(b).(semiring.ProductWeight)
	assert.Equal(t, semiring.TropicalWeight(1), sum.W1)
	assert.Equal(t, semiring.TropicalWeight(10), sum.W2)

	prod := a.Times(b).(semiring.ProductWeight)
	assert.Equal(t, semiring.TropicalWeight(3), prod.W1)
	assert.Equal(t, semiring.TropicalWeight(30), prod.W2)
}

func TestLexicographicBreaksTiesOnSecondComponent(t *testing.T) {
	a := semiring.LexicographicWeight{W1: semiring.TropicalWeight(1), W2: semiring.TropicalWeight(9)}
	b := semiring.LexicographicWeight{W1: semiring.TropicalWeight(1), W2: semiring.TropicalWeight(2)}

	got := a.Plus(b).(semiring.LexicographicWeight)
	assert.Equal(t, semiring.TropicalWeight(2), got.W2)
}

func TestGallicWeightPairsStringAndBase(t *testing.T) {
	one := semiring.NewGallicOne(semiring.GallicLeft, semiring.TropicalOne)
	a := semiring.GallicWeight{Mode: semiring.GallicLeft, Str: semiring.NewString(semiring.StringLeft, 1), Base: semiring.TropicalWeight(2)}
	got := a.Times(one).(semiring.GallicWeight)
	assert.Equal(t, a.Base, got.Base)
	assert.Equal(t, a.Str.Labels, got.Str.Labels)
}

func TestErrorWeightPropagates(t *testing.T) {
	e := semiring.ErrorWeight{}
	assert.False(t, e.Member())
	assert.False(t, e.Plus(semiring.TropicalWeight(1)).Member())
	_, ok := interface{}(e).(semiring.Divider)
	assert.False(t, ok, "ErrorWeight must not implement Divider")
}

func TestMinMaxIsPathAndIdempotent(t *testing.T) {
	a := semiring.MinMaxWeight(3)
	b := semiring.MinMaxWeight(8)
	assert.Equal(t, a, a.Plus(b))
	assert.Equal(t, b, a.Times(b))
	assert.NotZero(t, a.Properties()&semiring.PathProperty)
}
