package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

func TestReverseSwapsAcceptedDirection(t *testing.T) {
	f := buildChain([]fst.Label{1, 2, 3}, semiring.TropicalOne)
	r := algorithms.Reverse(f, semiring.TropicalZero)

	assert.True(t, accepts(r, []fst.Label{3, 2, 1}))
	assert.False(t, accepts(r, []fst.Label{1, 2, 3}))
}
