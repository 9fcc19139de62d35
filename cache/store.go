package cache

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
)

// Store is the full per-state cache for one delayed Fst: a StateTable for
// tuple→StateId interning, an Entry per interned state, and — when enabled
// via WithGC — an LRU eviction policy bounded by a byte budget.
//
// A Store is safe for concurrent use. The LRU list and the entry map share
// a single mutex rather than the table's own RWMutex, since every read that
// touches recency (Entry) must also write the LRU list.
type Store struct {
	opts  Options
	table *StateTable

	mu      sync.Mutex
	entries map[StateId]*Entry
	lru     *list.List // front = most recently used
	lruElem map[StateId]*list.Element
	usage   uint64
}

// New returns an empty Store configured by opts. With no options, GC is
// disabled and the Store retains every entry for its lifetime (§6.5's
// default_cache_gc=false).
func New(opts ...Option) *Store {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{
		opts:    cfg,
		table:   NewStateTable(),
		entries: make(map[StateId]*Entry),
		lru:     list.New(),
		lruElem: make(map[StateId]*list.Element),
	}
}

// Intern returns the StateId for tuple, allocating a fresh empty Entry (and
// a fresh StateId) the first time tuple is seen.
func (s *Store) Intern(tuple any) StateId {
	id, created := s.table.LookupOrCreate(tuple)
	if created {
		s.mu.Lock()
		s.entries[id] = &Entry{}
		s.touch(id)
		s.mu.Unlock()
	}
	return id
}

// Lookup returns the StateId already interned for tuple without creating
// one, and reports whether it was found.
func (s *Store) Lookup(tuple any) (StateId, bool) {
	id := s.table.FindId(tuple)
	return id, id != NoStateId
}

// Tuple returns the structural tuple id was interned from.
func (s *Store) Tuple(id StateId) any { return s.table.FindTuple(id) }

// Entry returns the cache entry for id, marking it most-recently-used. It
// returns ErrUnknownState only if id was never interned by this Store at
// all (callers must Intern before requesting an Entry); if id was interned
// but its Entry was since reclaimed by gc, Entry transparently re-creates a
// fresh, unresolved *Entry (ArcsDone/FinalKnown both false) rather than
// erroring, since the StateTable keeps id's structural tuple forever and
// recomputation from it is always possible. This is what makes a GC sweep
// invisible to callers: per spec.md's cache-determinism guarantee, two
// successive iterations over the same state must yield identical arcs even
// if a GC evicted that state in between — an ensure-style caller that reads
// ArcsDone/FinalKnown as false simply recomputes and re-Updates, rather than
// propagating an error for a state that, from the Fst's perspective, still
// exists.
func (s *Store) Entry(id StateId) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		s.touch(id)
		return e, nil
	}
	if s.table.FindTuple(id) == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	e := &Entry{}
	s.entries[id] = e
	s.touch(id)
	return e, nil
}

// Update replaces id's arcs/final-weight bookkeeping and runs GC if the new
// byte usage exceeds the configured budget. id need not currently have a
// live Entry (a prior gc sweep may have reclaimed it) — only that it was
// interned at some point — since Update is how a caller repopulates an
// entry Entry just handed back empty after such a reclaim.
func (s *Store) Update(id StateId, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table.FindTuple(id) == nil {
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	if old, ok := s.entries[id]; ok {
		e.pins = old.pins
	}
	s.entries[id] = e
	s.touch(id)
	if s.opts.GCEnabled {
		s.gc()
	}
	return nil
}

// Pin marks id's entry as referenced by an open arc iterator, preventing GC
// from evicting it. The returned func releases the pin and must be called
// exactly once, typically from the iterator's Close method.
func (s *Store) Pin(id StateId) func() {
	s.mu.Lock()
	if e, ok := s.entries[id]; ok {
		e.pins++
	}
	s.mu.Unlock()
	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.mu.Lock()
		if e, ok := s.entries[id]; ok && e.pins > 0 {
			e.pins--
		}
		s.mu.Unlock()
	}
}

// Size returns the number of interned states.
func (s *Store) Size() int { return s.table.Size() }

// Usage returns the current tracked byte usage across all entries.
func (s *Store) Usage() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}

// String reports the Store's current occupancy, formatted with
// humanize.Bytes so a log line or debugger reads "cache: 14 states, 3.2 kB
// used (limit 1.0 MB)" instead of a raw integer.
func (s *Store) String() string {
	s.mu.Lock()
	n := len(s.entries)
	usage := s.usage
	s.mu.Unlock()
	if !s.opts.GCEnabled {
		return fmt.Sprintf("cache: %d states, %s used (GC disabled)", n, humanize.Bytes(usage))
	}
	return fmt.Sprintf("cache: %d states, %s used (limit %s)", n, humanize.Bytes(usage), humanize.Bytes(s.opts.GCLimit))
}

// touch moves id to the front of the LRU list (or inserts it) and
// recomputes tracked byte usage. Callers must hold s.mu.
func (s *Store) touch(id StateId) {
	if elem, ok := s.lruElem[id]; ok {
		s.lru.MoveToFront(elem)
	} else {
		s.lruElem[id] = s.lru.PushFront(id)
	}
	s.recomputeUsage()
}

func (s *Store) recomputeUsage() {
	var total uint64
	for _, e := range s.entries {
		total += e.byteSize()
	}
	s.usage = total
}

// gc evicts least-recently-used, unpinned entries until usage falls back
// under the configured byte limit, or until no evictable entry remains.
// Callers must hold s.mu.
func (s *Store) gc() {
	if s.usage <= s.opts.GCLimit {
		return
	}
	evicted := 0
	remaining := s.usage
	for elem := s.lru.Back(); elem != nil && remaining > s.opts.GCLimit; {
		prev := elem.Prev()
		id := elem.Value.(StateId)
		e, ok := s.entries[id]
		if !ok || e.Pinned() {
			elem = prev
			continue
		}
		remaining -= e.byteSize()
		delete(s.entries, id)
		delete(s.lruElem, id)
		s.lru.Remove(elem)
		evicted++
		elem = prev
	}
	s.recomputeUsage()
	if evicted > 0 && glog.V(1) {
		glog.Infof("cache: GC evicted %d entries, usage now %s (limit %s)",
			evicted, humanize.Bytes(s.usage), humanize.Bytes(s.opts.GCLimit))
	}
}
