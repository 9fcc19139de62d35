package ioutil

import "errors"

// Sentinel errors returned by package ioutil, matched via errors.Is.
var (
	// ErrMalformedRecord indicates a text-format line had a field count
	// §6.3's grammar does not admit (an arc record takes 4 or 5 fields, a
	// final-state record takes 1 or 2).
	ErrMalformedRecord = errors.New("ioutil: malformed text record")

	// ErrUnknownSymbol indicates a label field named a string not present
	// in the symbol table resolving it.
	ErrUnknownSymbol = errors.New("ioutil: symbol not found in table")

	// ErrUnsupportedWeightType indicates WeightParserFor/WeightTypeName was
	// asked about a weight type the reference textual codec does not
	// know how to round-trip (composite semirings need a caller-supplied
	// WeightParser instead).
	ErrUnsupportedWeightType = errors.New("ioutil: unsupported weight type for text codec")

	// ErrNoRegisteredCodec names the case of an fst.Type() string with no
	// registered Writer/Reader. WriterFor/ReaderFor report that case through
	// their bool result and do not return this error.
	ErrNoRegisteredCodec = errors.New("ioutil: no codec registered for this fst type")
)
