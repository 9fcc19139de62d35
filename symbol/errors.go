package symbol

import "errors"

var (
	// ErrKeyCollision is returned by AddSymbolKey(s, key) when key already
	// maps to a different symbol than s.
	ErrKeyCollision = errors.New("symbol: key already bound to a different symbol")

	// ErrSymbolCollision is returned by AddSymbolKey(s, key) when s already
	// maps to a different key than the one requested.
	ErrSymbolCollision = errors.New("symbol: symbol already bound to a different key")
)
