package ioutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/ioutil"
	"github.com/wfstgo/wfst/semiring"
)

func TestWritePotentialsThenReadPotentialsRoundTrips(t *testing.T) {
	d := []semiring.Weight{
		semiring.TropicalWeight(0),
		semiring.TropicalZero,
		semiring.TropicalWeight(3.5),
	}
	var buf strings.Builder
	require.NoError(t, ioutil.WritePotentials(&buf, d))

	parse, err := ioutil.WeightParserFor("tropical")
	require.NoError(t, err)
	out, err := ioutil.ReadPotentials(strings.NewReader(buf.String()), semiring.TropicalZero, parse)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.True(t, out[0].ApproxEqual(semiring.TropicalWeight(0), 1e-9))
	assert.True(t, out[1].ApproxEqual(semiring.TropicalZero, 1e-9))
	assert.True(t, out[2].ApproxEqual(semiring.TropicalWeight(3.5), 1e-9))
}

func TestReadPotentialsDefaultsMissingStatesToZero(t *testing.T) {
	parse, err := ioutil.WeightParserFor("tropical")
	require.NoError(t, err)
	out, err := ioutil.ReadPotentials(strings.NewReader("2\t1.0\n"), semiring.TropicalZero, parse)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.True(t, out[0].ApproxEqual(semiring.TropicalZero, 1e-9))
	assert.True(t, out[1].ApproxEqual(semiring.TropicalZero, 1e-9))
	assert.True(t, out[2].ApproxEqual(semiring.TropicalWeight(1.0), 1e-9))
}
