package ioutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/ioutil"
)

func TestVectorTypeHasRegisteredTextCodec(t *testing.T) {
	w, ok := ioutil.WriterFor("vector")
	require.True(t, ok)
	r, ok := ioutil.ReaderFor("vector")
	require.True(t, ok)

	f := chainFst()
	var buf strings.Builder
	require.NoError(t, w.WriteFst(&buf, f))

	out, err := r.ReadFst(strings.NewReader(buf.String()))
	require.NoError(t, err)

	n := 0
	for it := out.States(); !it.Done(); it.Next() {
		n++
	}
	assert.Equal(t, f.NumStates(), n)
}

func TestUnregisteredTypeReportsNotOk(t *testing.T) {
	_, ok := ioutil.WriterFor("no-such-type")
	assert.False(t, ok)
}
