package semiring

import "errors"

// Sentinel errors returned by semiring operations. Arithmetic itself never
// returns an error (see doc.go): Plus/Times/Divide on malformed operands
// produce a not-a-member value instead. These sentinels are reserved for the
// few operations that cannot express failure as a weight, such as Divide's
// side argument being unsupported by a given semiring, or type assertions
// made by callers outside this package.
var (
	// ErrNotDivider is returned by callers that type-assert Weight to
	// Divider and find the concrete type does not implement it.
	ErrNotDivider = errors.New("semiring: weight type does not support Divide")

	// ErrIncompatibleTypes names the case of Plus/Times/Divide receiving
	// operands whose dynamic types differ (e.g. TropicalWeight and
	// LogWeight mixed in one call). Arithmetic methods do not return this,
	// and no function in this package returns it either.
	ErrIncompatibleTypes = errors.New("semiring: incompatible weight types")

	// ErrNotPathSemiring is returned by algorithms (outside this package)
	// that require Properties()&Path != 0 and find it unset; kept here so
	// every package depending on semiring shares one sentinel.
	ErrNotPathSemiring = errors.New("semiring: not a path semiring")
)
