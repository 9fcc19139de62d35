package ioutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wfstgo/wfst/semiring"
)

// WeightParser turns one text-format weight field back into a Weight of a
// fixed type — the textual codec's only per-semiring extension point.
type WeightParser func(s string) (semiring.Weight, error)

// WeightTypeName names a weight's semiring the way the text format's header
// comment and §6.2's WeightType header field would, for the seven numeric
// semirings the reference codec round-trips natively. Composite and string
// semirings report ErrUnsupportedWeightType: a caller with one of those
// supplies its own WeightParser to ReadText instead.
func WeightTypeName(w semiring.Weight) (string, error) {
	switch w.(type) {
	case semiring.TropicalWeight:
		return "tropical", nil
	case semiring.LogWeight:
		return "log", nil
	case semiring.Log64Weight:
		return "log64", nil
	case semiring.RealWeight:
		return "real", nil
	case semiring.Real64Weight:
		return "real64", nil
	case semiring.MinMaxWeight:
		return "minmax", nil
	case semiring.SignedLogWeight:
		return "signedlog", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedWeightType, w)
	}
}

// WeightParserFor returns the built-in WeightParser for one of the type
// names WeightTypeName reports, or ErrUnsupportedWeightType.
func WeightParserFor(typeName string) (WeightParser, error) {
	switch typeName {
	case "tropical":
		return parseFloatWeight(func(v float64) semiring.Weight { return semiring.TropicalWeight(v) }), nil
	case "log":
		return parseFloatWeight(func(v float64) semiring.Weight { return semiring.LogWeight(v) }), nil
	case "log64":
		return parseFloatWeight(func(v float64) semiring.Weight { return semiring.Log64Weight(v) }), nil
	case "real":
		return parseFloatWeight(func(v float64) semiring.Weight { return semiring.RealWeight(v) }), nil
	case "real64":
		return parseFloatWeight(func(v float64) semiring.Weight { return semiring.Real64Weight(v) }), nil
	case "minmax":
		return parseFloatWeight(func(v float64) semiring.Weight { return semiring.MinMaxWeight(v) }), nil
	case "signedlog":
		return parseSignedLogWeight, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedWeightType, typeName)
	}
}

func parseFloatWeight(wrap func(float64) semiring.Weight) WeightParser {
	return func(s string) (semiring.Weight, error) {
		v, err := parseFloatField(s)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

func parseSignedLogWeight(s string) (semiring.Weight, error) {
	negative := strings.HasPrefix(s, "-")
	v, err := parseFloatField(strings.TrimPrefix(s, "-"))
	if err != nil {
		return nil, err
	}
	return semiring.SignedLogWeight{Value: v, Negative: negative}, nil
}

func parseFloatField(s string) (float64, error) {
	if s == "Infinity" {
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ioutil: invalid weight %q: %w", s, err)
	}
	return v, nil
}
