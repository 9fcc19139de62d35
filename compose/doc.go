// Package compose implements the composition engine: matchers that look up
// an arc by label at a given state, epsilon filters that resolve the
// classic epsilon-epsilon ambiguity of transducer composition, the
// three-way state-product composition algorithm itself, and the
// rational operations (union, concatenation, closure, replace), which are
// eager VectorFst constructions independent of composition.
//
// Composition is exposed both as an eagerly materialized VectorFst
// (Compose) and as an on-demand Fst (NewComposeFst) whose states and arcs
// are computed and cached lazily via package cache — mirroring how a real
// transducer toolkit avoids expanding a composition's full (often much
// larger) state space unless the caller actually visits it.
package compose
