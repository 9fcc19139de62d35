package ioutil

import (
	"io"
	"sync"

	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
	"github.com/wfstgo/wfst/symbol"
)

// Writer serializes an Fst. Reader deserializes one. Both are implemented
// per transducer type and registered under fst.Type()'s string, per §9's
// "static registry keyed by string type-name" convention — the same shape
// as the teacher's matrix format dispatch, generalized from one concrete
// type to a string-keyed table any package can extend.
type Writer interface {
	WriteFst(w io.Writer, f fst.Fst) error
}

type Reader interface {
	ReadFst(r io.Reader) (fst.Fst, error)
}

var registryMu sync.RWMutex
var writers = map[string]Writer{}
var readers = map[string]Reader{}

// RegisterWriter adds (or replaces) the Writer for fstType.
func RegisterWriter(fstType string, w Writer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	writers[fstType] = w
}

// RegisterReader adds (or replaces) the Reader for fstType.
func RegisterReader(fstType string, r Reader) {
	registryMu.Lock()
	defer registryMu.Unlock()
	readers[fstType] = r
}

// WriterFor looks up the registered Writer for fstType (as fst.Fst.Type()
// would report it).
func WriterFor(fstType string) (Writer, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	w, ok := writers[fstType]
	return w, ok
}

// ReaderFor looks up the registered Reader for fstType.
func ReaderFor(fstType string) (Reader, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := readers[fstType]
	return r, ok
}

// TextCodec adapts WriteText/ReadText to the Writer/Reader interfaces for
// one fixed weight semiring, identified by Zero.
type TextCodec struct {
	Zero   semiring.Weight
	Parse  WeightParser
	ISyms  *symbol.Table
	OSyms  *symbol.Table
}

// NewTextCodec builds a TextCodec for zero's semiring, using the built-in
// WeightParser WeightTypeName/WeightParserFor provide for it.
func NewTextCodec(zero semiring.Weight, isyms, osyms *symbol.Table) (*TextCodec, error) {
	name, err := WeightTypeName(zero)
	if err != nil {
		return nil, err
	}
	parse, err := WeightParserFor(name)
	if err != nil {
		return nil, err
	}
	return &TextCodec{Zero: zero, Parse: parse, ISyms: isyms, OSyms: osyms}, nil
}

func (c *TextCodec) WriteFst(w io.Writer, f fst.Fst) error {
	return WriteText(w, f, c.ISyms, c.OSyms)
}

func (c *TextCodec) ReadFst(r io.Reader) (fst.Fst, error) {
	return ReadText(r, c.Zero, c.Parse, c.ISyms, c.OSyms)
}

func init() {
	codec, err := NewTextCodec(semiring.TropicalZero, nil, nil)
	if err != nil {
		panic(err) // TropicalWeight is always a supported text-codec type.
	}
	RegisterWriter("vector", codec)
	RegisterReader("vector", codec)
}
