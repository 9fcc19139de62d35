package ioutil

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wfstgo/wfst/semiring"
)

// WritePotentials renders a ShortestDistance-style potentials vector in
// §6.4's textual format: one "state weight" line per non-Zero entry, in
// ascending StateId order. States whose potential is Zero are omitted —
// ReadPotentials restores them by defaulting to zero.
func WritePotentials(w io.Writer, d []semiring.Weight) error {
	bw := bufio.NewWriter(w)
	for s, weight := range d {
		if weight == nil || weight.ApproxEqual(weight.Zero(), 0) {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", s, weight.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPotentials parses §6.4's textual format back into a dense
// []semiring.Weight indexed by StateId; any state not named in the input
// defaults to zero, matching ShortestDistance's own convention for states
// it never visits.
func ReadPotentials(r io.Reader, zero semiring.Weight, parse WeightParser) ([]semiring.Weight, error) {
	type entry struct {
		state  int64
		weight semiring.Weight
	}
	var entries []entry
	maxState := int64(-1)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return strings.ContainsRune(DefaultFieldSeparator, r)
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %d fields", ErrMalformedRecord, len(fields))
		}
		state, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: state %q: %v", ErrMalformedRecord, fields[0], err)
		}
		weight, err := parse(fields[1])
		if err != nil {
			return nil, err
		}
		if state > maxState {
			maxState = state
		}
		entries = append(entries, entry{state: state, weight: weight})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	d := make([]semiring.Weight, maxState+1)
	for i := range d {
		d[i] = zero
	}
	for _, e := range entries {
		d[e.state] = e.weight
	}
	return d, nil
}
