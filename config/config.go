// Package config holds the cross-cutting configuration surface of §6.5:
// the knobs every other package's functional options ultimately derive
// from when a caller wants one place to configure an entire pipeline,
// grounded on the teacher's matrix.Options "single struct, functional
// options, documented defaults" shape.
package config

// Default values for every knob below, named so callers can reference
// them instead of repeating magic constants.
const (
	// DefaultCacheGC matches cache.DefaultOptions: disabled, so a delayed
	// transducer caches everything until a caller opts into eviction.
	DefaultCacheGC          = false
	DefaultCacheGCLimit     = 1 << 26 // 64 MiB
	DefaultCompatSymbols    = true
	DefaultFieldSeparator   = " \t"
	DefaultPairSeparator    = ","
	DefaultPairParentheses  = "()"
	DefaultVerifyProperties = false
)

// Config is the §6.5 configuration surface. Fields are unexported; build
// one with New and the With* options below.
type Config struct {
	cacheGC          bool
	cacheGCLimit     uint64
	compatSymbols    bool
	fieldSeparator   string
	pairSeparator    string
	pairParentheses  string
	verifyProperties bool
}

// Option configures a Config.
type Option func(*Config)

// New builds a Config from its documented defaults plus any overrides.
func New(opts ...Option) Config {
	c := Config{
		cacheGC:          DefaultCacheGC,
		cacheGCLimit:     DefaultCacheGCLimit,
		compatSymbols:    DefaultCompatSymbols,
		fieldSeparator:   DefaultFieldSeparator,
		pairSeparator:    DefaultPairSeparator,
		pairParentheses:  DefaultPairParentheses,
		verifyProperties: DefaultVerifyProperties,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// CacheGC reports whether delayed Fsts should run LRU eviction by default.
func (c Config) CacheGC() bool { return c.cacheGC }

// CacheGCLimit is the byte budget that triggers eviction.
func (c Config) CacheGCLimit() uint64 { return c.cacheGCLimit }

// CompatSymbols reports whether symbol-table compatibility is enforced
// (vs. downgraded to a warning) across operations that combine two Fsts.
func (c Config) CompatSymbols() bool { return c.compatSymbols }

// FieldSeparator is the character set ioutil splits textual records on.
func (c Config) FieldSeparator() string { return c.fieldSeparator }

// PairSeparator and PairParentheses control composite-weight textual I/O
// (e.g. "(1,2)" for a product weight with PairParentheses "()").
func (c Config) PairSeparator() string   { return c.pairSeparator }
func (c Config) PairParentheses() string { return c.pairParentheses }

// VerifyProperties reports whether property bits are re-verified on every
// query rather than trusted from the cached bitmask — a debug-mode knob.
func (c Config) VerifyProperties() bool { return c.verifyProperties }

// WithCacheGC toggles default eviction in delayed Fsts.
func WithCacheGC(on bool) Option { return func(c *Config) { c.cacheGC = on } }

// WithCacheGCLimit sets the eviction byte budget; panics on a zero limit,
// since a Store configured to evict down to zero bytes can never retain
// anything it computes.
func WithCacheGCLimit(limit uint64) Option {
	if limit == 0 {
		panic("config: cache GC limit must be positive")
	}
	return func(c *Config) { c.cacheGCLimit = limit }
}

// WithCompatSymbols toggles strict symbol-table compatibility checking.
func WithCompatSymbols(on bool) Option { return func(c *Config) { c.compatSymbols = on } }

// WithFieldSeparator overrides the textual-format field separator; panics
// on an empty string, since that would make every field boundary ambiguous.
func WithFieldSeparator(sep string) Option {
	if sep == "" {
		panic("config: field separator must not be empty")
	}
	return func(c *Config) { c.fieldSeparator = sep }
}

// WithPairSeparator and WithPairParentheses override composite-weight
// textual I/O delimiters; WithPairParentheses panics unless given exactly
// two characters (open, close).
func WithPairSeparator(sep string) Option {
	return func(c *Config) { c.pairSeparator = sep }
}

func WithPairParentheses(parens string) Option {
	if len(parens) != 2 {
		panic("config: pair parentheses must be exactly two characters")
	}
	return func(c *Config) { c.pairParentheses = parens }
}

// WithVerifyProperties toggles per-query property re-verification.
func WithVerifyProperties(on bool) Option { return func(c *Config) { c.verifyProperties = on } }
