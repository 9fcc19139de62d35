// Package symbol implements the symbol-table contract of §6.1: a
// reference-counted, copy-on-write mapping between label keys (int64) and
// symbol strings, with a deterministic checksum used by CompatSymbols to
// decide whether two transducers' label spaces are comparable.
//
// The core module depends only on this contract, not on any particular
// storage or encoding (§1's Non-goals); Table is one concrete, reasonable
// implementation, grounded on the teacher's reference-counted, mutex-
// guarded Graph (core.Graph) for its thread-safety shape.
package symbol
