// Package fst defines the polymorphic transducer interfaces (Fst,
// ExpandedFst, MutableFst), the Arc/Label/StateId primitives, the property
// bitmask, and the concrete in-memory transducer representations
// (VectorFst, ConstFst, CompactFst).
//
// Every algorithm and combinator elsewhere in this module is written
// against the Fst interface, not a concrete type: composition, connection,
// determinization and the rest accept any Fst and, for delayed
// (on-demand) results, return one backed by the cache package rather than a
// VectorFst. Concrete random-access state is provided by VectorFst (a
// growable array of states, each with a growable array of arcs — the
// general-purpose mutable representation) and ConstFst/CompactFst (flat,
// read-only representations for memory-constrained or write-once use).
package fst
