package cache

// Options configures a Store's garbage-collection behavior.
//
// GCEnabled  – whether the byte-budget LRU policy runs at all.
// GCLimit    – the byte budget; once tracked usage exceeds this, unpinned
//
//	entries are evicted oldest-first until usage is back under budget.
type Options struct {
	GCEnabled bool
	GCLimit   uint64
}

// Option is a functional option for configuring a Store.
type Option func(*Options)

// DefaultOptions returns the Store defaults: GC disabled, matching §6.5's
// default_cache_gc=false — an on-demand transducer caches everything it
// computes until the caller explicitly opts into bounded memory.
func DefaultOptions() Options {
	return Options{GCEnabled: false, GCLimit: 0}
}

// WithGC enables the LRU eviction policy with the given byte budget. limit
// must be positive; a zero or negative budget would evict every entry the
// instant it is inserted, which is never useful, so it panics immediately
// rather than silently producing a cache that never retains anything.
func WithGC(limit uint64) Option {
	return func(o *Options) {
		if limit == 0 {
			panic(ErrBadGCLimit.Error())
		}
		o.GCEnabled = true
		o.GCLimit = limit
	}
}

// WithNoGC disables eviction: the Store retains every entry it ever
// computes for its lifetime. This is the default, but is exposed explicitly
// so a caller can override a GC-enabling option earlier in the chain.
func WithNoGC() Option {
	return func(o *Options) {
		o.GCEnabled = false
		o.GCLimit = 0
	}
}
