// Package algorithms implements the graph/automaton algorithms that
// consume a complete fst.Fst value rather than build a delayed view of
// one: connectivity trimming (Connect), shortest-distance and
// shortest-path, weighted determinization, epsilon removal, topological
// sort, reversal, and weight pushing — plus the mapping utilities
// (ArcMap/StateMap, Invert, Project, Relabel, EncodeMapper/Encode/Decode)
// several of the above are built from.
//
// The transducer-producing entry points read their input Fst and return a
// freshly built *fst.VectorFst (ShortestDistance returns a
// []semiring.Weight instead); none of them mutate the Fst passed in.
package algorithms
