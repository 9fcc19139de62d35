package cache

import (
	"sync"

	"github.com/wfstgo/wfst/fst"
)

// StateTable interns arbitrary comparable structural tuples (e.g. a
// (state1, state2, filterState) triple for Compose) into dense, stable fst.StateId values. Every delayed
// transducer in this module is built around one StateTable: "have we seen
// this structural state before" is answered in amortized O(1) via a plain
// Go map, since the tuple type already provides value equality and hashing
// (Go's map implementation hashes any comparable key internally — there is
// no need to roll a custom structural hash function here).
//
// Safe for concurrent use: FindId/FindTuple/LookupOrCreate are all guarded
// by an internal RWMutex, matching core.Graph's locking convention.
type StateTable struct {
	mu      sync.RWMutex
	byTuple map[any]fst.StateId
	byId    []any
}

// StateId re-exports fst.StateId so callers of this package rarely need a
// direct import of package fst just to name the type.
type StateId = fst.StateId

// NoStateId re-exports fst.NoStateId.
const NoStateId = fst.NoStateId

// NewStateTable returns an empty StateTable.
func NewStateTable() *StateTable {
	return &StateTable{byTuple: make(map[any]StateId)}
}

// FindId returns the StateId already interned for tuple, or NoStateId if
// tuple has never been seen.
func (t *StateTable) FindId(tuple any) StateId {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id, ok := t.byTuple[tuple]; ok {
		return id
	}
	return NoStateId
}

// FindTuple returns the structural tuple originally interned for id, or nil
// if id is out of range.
func (t *StateTable) FindTuple(id StateId) any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) >= len(t.byId) {
		return nil
	}
	return t.byId[id]
}

// LookupOrCreate returns the existing StateId for tuple, interning a fresh
// one if tuple has not been seen before. The returned bool is true iff a new
// id was allocated (the caller typically uses this to decide whether to
// push the new state onto a delayed-expansion worklist).
func (t *StateTable) LookupOrCreate(tuple any) (StateId, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byTuple[tuple]; ok {
		return id, false
	}
	id := StateId(len(t.byId))
	t.byId = append(t.byId, tuple)
	t.byTuple[tuple] = id
	return id, true
}

// Size returns the number of interned states.
func (t *StateTable) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byId)
}
