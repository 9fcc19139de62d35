package symbol

import (
	"crypto/md5"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// shared is the reference-counted backing store a Table handle points at.
// Mutation copies shared when its refcount exceeds one, per §3.5.
type shared struct {
	mu         sync.RWMutex
	refs       int
	name       string
	keyToSym   map[int64]string
	symToKey   map[string]int64
	nextKey    int64
}

// Table is a symbol table: a bijection between int64 keys and strings.
// Table values are cheap to copy (Copy()); copies share the backing store
// until one of them mutates, at which point that copy privatizes its own
// shared store (copy-on-write).
type Table struct {
	s *shared
}

// NewTable creates an empty, uniquely-named symbol table. If name is empty,
// a random UUID tag is used as the name (SPEC_FULL.md's domain-stack wiring
// for google/uuid). The name does not affect CompatSymbols, which compares
// checksums only.
func NewTable(name string) *Table {
	if name == "" {
		name = "anonymous-" + uuid.New().String()
	}
	return &Table{s: &shared{
		refs:     1,
		name:     name,
		keyToSym: make(map[int64]string),
		symToKey: make(map[string]int64),
	}}
}

// Name returns the table's name.
func (t *Table) Name() string {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.s.name
}

// Copy returns a new handle sharing this table's backing store; the shared
// store's refcount is incremented so the next mutation through either
// handle privatizes a copy instead of mutating the other handle's view.
func (t *Table) Copy() *Table {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.refs++
	return &Table{s: t.s}
}

// cow ensures t.s is privately owned before a mutation, copying the backing
// store if another handle still references it.
func (t *Table) cow() {
	t.s.mu.Lock()
	if t.s.refs <= 1 {
		t.s.mu.Unlock()
		return
	}
	t.s.refs--
	cp := &shared{
		refs:     1,
		name:     t.s.name,
		keyToSym: make(map[int64]string, len(t.s.keyToSym)),
		symToKey: make(map[string]int64, len(t.s.symToKey)),
		nextKey:  t.s.nextKey,
	}
	for k, v := range t.s.keyToSym {
		cp.keyToSym[k] = v
	}
	for k, v := range t.s.symToKey {
		cp.symToKey[k] = v
	}
	t.s.mu.Unlock()
	t.s = cp
}

// AddSymbol assigns the next available key to s and returns it. Idempotent:
// calling it again with an already-present s returns the same key.
func (t *Table) AddSymbol(s string) int64 {
	t.s.mu.RLock()
	if key, ok := t.s.symToKey[s]; ok {
		t.s.mu.RUnlock()
		return key
	}
	t.s.mu.RUnlock()

	t.cow()
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if key, ok := t.s.symToKey[s]; ok {
		return key
	}
	key := t.s.nextKey
	t.s.nextKey++
	t.s.keyToSym[key] = s
	t.s.symToKey[s] = key
	return key
}

// AddSymbolKey assigns s to the explicit key. Idempotent on a collision
// with an identical existing (key,s) pair; any other collision (key bound
// to a different symbol, or s bound to a different key) is reported.
func (t *Table) AddSymbolKey(s string, key int64) error {
	t.s.mu.RLock()
	if existing, ok := t.s.keyToSym[key]; ok {
		if existing != s {
			t.s.mu.RUnlock()
			return fmt.Errorf("%w: key=%d has %q, requested %q", ErrKeyCollision, key, existing, s)
		}
		t.s.mu.RUnlock()
		return nil
	}
	if existingKey, ok := t.s.symToKey[s]; ok {
		t.s.mu.RUnlock()
		return fmt.Errorf("%w: symbol=%q has key=%d, requested key=%d", ErrSymbolCollision, s, existingKey, key)
	}
	t.s.mu.RUnlock()

	t.cow()
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.keyToSym[key] = s
	t.s.symToKey[s] = key
	if key >= t.s.nextKey {
		t.s.nextKey = key + 1
	}
	return nil
}

// FindSymbol returns the symbol bound to key, if any.
func (t *Table) FindSymbol(key int64) (string, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	s, ok := t.s.keyToSym[key]
	return s, ok
}

// FindKey returns the key bound to s, if any.
func (t *Table) FindKey(s string) (int64, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	key, ok := t.s.symToKey[s]
	return key, ok
}

// NumSymbols reports how many (key,symbol) pairs are bound.
func (t *Table) NumSymbols() int {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return len(t.s.keyToSym)
}

// AvailableKey returns one past the highest key ever assigned.
func (t *Table) AvailableKey() int64 {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.s.nextKey
}

// Checksum returns a deterministic digest over the (key,symbol) set,
// independent of insertion order, used by CompatSymbols.
func (t *Table) Checksum() [16]byte {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	keys := make([]int64, 0, len(t.s.keyToSym))
	for k := range t.s.keyToSym {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	h := md5.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%d:%s;", k, t.s.keyToSym[k])
	}
	var sum [16]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// CompatSymbols reports whether a and b are compatible: both nil, or
// both non-nil with equal Checksum. Pass compatSymbols=false to downgrade
// this to always-true (§6.5's compat_symbols knob allows callers to skip
// the check and accept mismatched tables at their own risk).
func CompatSymbols(a, b *Table, compatSymbols bool) bool {
	if !compatSymbols {
		return true
	}
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Checksum() == b.Checksum()
}
