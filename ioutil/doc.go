// Package ioutil is the module's I/O boundary: a Reader/Writer contract per
// transducer type, a reference textual codec for transducers (§6.3) and for
// shortest-distance potentials (§6.4), and a Header describing the framing
// §6.2 would use for a binary encoding.
//
// This package deliberately stops short of a full binary format: no byte
// layout is mandated by the specification it follows, so Header exists to
// name the fields such a layout would need without committing to one.
package ioutil
