package ioutil

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
	"github.com/wfstgo/wfst/symbol"
)

// DefaultFieldSeparator matches config.DefaultFieldSeparator: fields split
// on runs of space or tab.
const DefaultFieldSeparator = " \t"

// WriteText renders f in §6.3's textual format: one line per arc
// ("src dst ilabel olabel [weight]") followed by one line per final state
// ("state [weight]"), states visited in ascending StateId order. A weight
// equal to One is omitted, matching §6.3's "empty weight defaults to One"
// reading rule. Labels are rendered through isyms/osyms when non-nil, as
// their numeric key otherwise.
func WriteText(w io.Writer, f fst.Fst, isyms, osyms *symbol.Table) error {
	bw := bufio.NewWriter(w)
	label := func(t *symbol.Table, l fst.Label) string {
		if t != nil {
			if s, ok := t.FindSymbol(int64(l)); ok {
				return s
			}
		}
		return strconv.FormatInt(int64(l), 10)
	}

	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			fields := []string{
				strconv.FormatInt(int64(s), 10),
				strconv.FormatInt(int64(a.NextState), 10),
				label(isyms, a.ILabel),
				label(osyms, a.OLabel),
			}
			if !a.Weight.ApproxEqual(a.Weight.One(), 0) {
				fields = append(fields, a.Weight.String())
			}
			if _, err := fmt.Fprintln(bw, strings.Join(fields, "\t")); err != nil {
				return err
			}
		}
	}
	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		final := f.Final(s)
		if final.ApproxEqual(final.Zero(), 0) {
			continue
		}
		fields := []string{strconv.FormatInt(int64(s), 10)}
		if !final.ApproxEqual(final.One(), 0) {
			fields = append(fields, final.String())
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText parses §6.3's textual format back into a VectorFst. zero
// supplies the target semiring's Zero (so Final defaults correctly for
// states no final-state record names); parse turns a weight field into a
// Weight of that semiring (WeightParserFor returns a built-in one for the
// seven numeric semirings this package round-trips natively). isyms/osyms,
// when non-nil, resolve symbolic label fields; a field that parses as a
// plain integer is always accepted as a numeric label regardless.
//
// The start state is the state named first in the input: the source state
// of the first record if that is an arc record, or its state if it is a
// final-state record, per the reference format's convention of not
// repeating it explicitly.
func ReadText(r io.Reader, zero semiring.Weight, parse WeightParser, isyms, osyms *symbol.Table) (*fst.VectorFst, error) {
	one := zero.One()

	type arcRecord struct {
		src, dst   int64
		il, ol     fst.Label
		weight     semiring.Weight
	}
	type finalRecord struct {
		state  int64
		weight semiring.Weight
	}

	var arcs []arcRecord
	var finals []finalRecord
	maxState := int64(-1)
	var start int64 = -1

	track := func(id int64) {
		if id > maxState {
			maxState = id
		}
	}

	resolveLabel := func(t *symbol.Table, field string) (fst.Label, error) {
		if n, err := strconv.ParseInt(field, 10, 64); err == nil {
			return fst.Label(n), nil
		}
		if t == nil {
			return 0, fmt.Errorf("%w: %q is not numeric and no symbol table was given", ErrMalformedRecord, field)
		}
		key, ok := t.FindKey(field)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, field)
		}
		return fst.Label(key), nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return strings.ContainsRune(DefaultFieldSeparator, r)
		})

		switch len(fields) {
		case 4, 5:
			src, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: src %q: %v", ErrMalformedRecord, fields[0], err)
			}
			dst, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: dst %q: %v", ErrMalformedRecord, fields[1], err)
			}
			il, err := resolveLabel(isyms, fields[2])
			if err != nil {
				return nil, err
			}
			ol, err := resolveLabel(osyms, fields[3])
			if err != nil {
				return nil, err
			}
			weight := one
			if len(fields) == 5 {
				weight, err = parse(fields[4])
				if err != nil {
					return nil, err
				}
			}
			if start == -1 {
				start = src
			}
			track(src)
			track(dst)
			arcs = append(arcs, arcRecord{src: src, dst: dst, il: il, ol: ol, weight: weight})
		case 1, 2:
			state, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: state %q: %v", ErrMalformedRecord, fields[0], err)
			}
			weight := one
			if len(fields) == 2 {
				weight, err = parse(fields[1])
				if err != nil {
					return nil, err
				}
			}
			if start == -1 {
				start = state
			}
			track(state)
			finals = append(finals, finalRecord{state: state, weight: weight})
		default:
			return nil, fmt.Errorf("%w: %d fields", ErrMalformedRecord, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out := fst.NewVectorFst(zero)
	if maxState < 0 {
		return out, nil
	}
	out.ReserveStates(int(maxState) + 1)
	for i := int64(0); i <= maxState; i++ {
		out.AddState()
	}
	out.SetStart(fst.StateId(start))
	for _, fr := range finals {
		out.SetFinal(fst.StateId(fr.state), fr.weight)
	}
	for _, ar := range arcs {
		out.AddArc(fst.StateId(ar.src), fst.Arc{ILabel: ar.il, OLabel: ar.ol, Weight: ar.weight, NextState: fst.StateId(ar.dst)})
	}
	return out, nil
}
