// Package cache implements the delayed-transducer cache core: a state table
// that interns structural tuples into dense StateId values, a per-state
// cache entry holding whatever arcs/final-weight an on-demand Fst has so far
// materialized, and an optional LRU eviction policy gated by a byte budget.
//
// Delayed transducers (in this module, compose's ComposeFst; union,
// rmepsilon and the other operations are eager) do not expand their whole state space up front; instead each newly-visited
// state is computed once, cached, and — if the cache's GC is enabled and the
// byte budget is exceeded — the least-recently-used unpinned entries are
// evicted to bound memory. An entry is pinned for as long as any
// fst.ArcIterator obtained from it is still open, so GC never frees memory a
// caller is actively iterating.
//
// Complexity:
//
//   - State table lookup: amortized O(1) (Go map keyed by the tuple), but
//     Intern, Entry and Update also recompute the tracked byte usage over
//     every live entry, O(n) per call.
//   - GC sweep: walks the LRU order past pinned entries and recomputes the
//     usage as it evicts, O(n) per sweep; triggered only when the tracked
//     byte usage exceeds the configured limit.
package cache
