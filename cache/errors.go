package cache

import "errors"

// Sentinel errors returned by the cache package, matched by callers with
// errors.Is.
var (
	// ErrBadGCLimit indicates that WithGC was called with a non-positive
	// byte budget, which would evict every entry immediately after insertion.
	ErrBadGCLimit = errors.New("cache: GC byte limit must be positive")

	// ErrUnknownState indicates a StateId was looked up that this Store
	// never interned and has no entry for.
	ErrUnknownState = errors.New("cache: unknown state id")

	// ErrEntryPinned indicates an eviction attempt targeted an entry that
	// still has an open arc iterator pinning it; the caller asked for a
	// hard eviction where only a GC sweep (which skips pinned entries) is
	// permitted.
	ErrEntryPinned = errors.New("cache: entry is pinned by an open iterator")
)
