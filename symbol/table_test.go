package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstgo/wfst/symbol"
)

func TestAddSymbolIdempotent(t *testing.T) {
	tbl := symbol.NewTable("t")
	k1 := tbl.AddSymbol("a")
	k2 := tbl.AddSymbol("a")
	assert.Equal(t, k1, k2)
	assert.Equal(t, 1, tbl.NumSymbols())
}

func TestAddSymbolKeyCollision(t *testing.T) {
	tbl := symbol.NewTable("t")
	require.NoError(t, tbl.AddSymbolKey("a", 5))
	err := tbl.AddSymbolKey("b", 5)
	require.ErrorIs(t, err, symbol.ErrKeyCollision)
}

func TestCopyOnWrite(t *testing.T) {
	a := symbol.NewTable("t")
	a.AddSymbol("x")
	b := a.Copy()

	b.AddSymbol("y")

	_, ok := a.FindKey("y")
	assert.False(t, ok, "mutating the copy must not affect the original")
	_, ok = b.FindKey("y")
	assert.True(t, ok)
}

func TestCompatSymbols(t *testing.T) {
	a := symbol.NewTable("a")
	a.AddSymbol("x")
	b := symbol.NewTable("b")
	b.AddSymbol("x")

	assert.True(t, symbol.CompatSymbols(a, b, true))

	c := symbol.NewTable("c")
	c.AddSymbol("z")
	assert.False(t, symbol.CompatSymbols(a, c, true))
	assert.True(t, symbol.CompatSymbols(a, c, false))
}

func TestChecksumOrderIndependent(t *testing.T) {
	a := symbol.NewTable("a")
	a.AddSymbol("x")
	a.AddSymbol("y")

	b := symbol.NewTable("b")
	b.AddSymbol("y")
	b.AddSymbol("x")

	assert.Equal(t, a.Checksum(), b.Checksum())
}
