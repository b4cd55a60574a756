package num

// RoundingMode selects how RoundWithMode breaks a tie, i.e. a value lying
// exactly half-way between two results at the requested precision.
type RoundingMode int

//go:generate go run golang.org/x/tools/cmd/stringer -type=RoundingMode -output=roundingmode_string.go
const (
	HalfUp   RoundingMode = iota + 1 // away from zero
	HalfDown                         // toward negative infinity
	HalfEven                         // last digit even ("banker's rounding")
	HalfOdd                          // last digit odd
)

// Valid reports whether m is one of the declared modes.
func (m RoundingMode) Valid() bool {
	return m >= HalfUp && m <= HalfOdd
}
