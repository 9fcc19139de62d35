package ioutil

import "github.com/wfstgo/wfst/fst"

// Magic is the framing constant a binary encoding would lead every
// transducer file with, per §6.2.
const Magic uint32 = 2125659606

// Version is this module's header format version. Bumped only if Header's
// field set changes.
const Version int32 = 1

// Header describes the framing fields §6.2's binary format places before a
// transducer's state/arc body: enough to dispatch to the right Reader and
// sanity-check the body that follows, without committing to a byte layout.
type Header struct {
	Magic      uint32
	FstType    string
	WeightType string
	Version    int32
	Properties fst.Properties
	Start      fst.StateId
	NumStates  int64
	NumArcs    int64
	HasISymbols bool
	HasOSymbols bool
}

// HeaderFor populates a Header describing f, as a binary writer would
// before serializing f's body.
func HeaderFor(f fst.Fst, weightType string) Header {
	h := Header{
		Magic:      Magic,
		FstType:    f.Type(),
		WeightType: weightType,
		Version:    Version,
		Properties: f.Properties(fst.AllTrinary, false),
		Start:      f.Start(),
	}
	var numStates, numArcs int64
	for it := f.States(); !it.Done(); it.Next() {
		numStates++
		numArcs += int64(f.NumArcs(it.Value()))
	}
	h.NumStates = numStates
	h.NumArcs = numArcs
	h.HasISymbols = f.InputSymbols() != nil
	h.HasOSymbols = f.OutputSymbols() != nil
	return h
}
