package num

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"numkit/shared"
)

type RoundResult = shared.Result[float64, *Diagnostic]

// Round rounds value to precision decimal places, half away from zero.
func Round(value float64, precision int) *RoundResult {
	return RoundWithMode(value, precision, HalfUp)
}

// RoundWithMode rounds value to precision decimal places. Values that are
// not on a tie are rounded half away from zero whatever the mode; the mode
// only decides the direction for an exact tie.
//
// A tie is detected by exact comparison of the scaled fraction against 0.5.
// Ties that have no exact binary representation (1.005 at precision 2, for
// instance) are therefore rounded half away from zero as well.
//
// NaN and infinite values are returned unchanged.
func RoundWithMode(value float64, precision int, mode RoundingMode) *RoundResult {
	if precision < 0 {
		return shared.ResultErr[float64](
			invalidArgument("precision", "precision must not be negative, got %d", precision),
		)
	}
	if !mode.Valid() {
		return shared.ResultErr[float64](
			invalidArgument("mode", "unknown rounding mode %s", mode),
		)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ok(value)
	}

	if mode == HalfUp {
		return ok(scalar.Round(value, precision))
	}

	factor := 1.0
	if precision > 0 {
		factor = math.Pow10(precision)
	}
	scaled := value * factor
	if math.IsInf(scaled, 0) {
		// Too large to carry any digit at this precision.
		return ok(value)
	}

	lower := math.Floor(scaled)
	if scaled-lower != 0.5 {
		return ok(scalar.Round(value, precision))
	}

	if mode == HalfDown {
		return ok(lower / factor)
	}

	// Step up when that makes the last digit match the requested parity.
	odd := math.Mod(lower, 2) != 0
	if odd == (mode == HalfEven) {
		return ok(math.Ceil(scaled) / factor)
	}
	return ok(lower / factor)
}

func ok(value float64) *RoundResult {
	if value == 0 {
		value = 0 // drop the sign of -0
	}
	return shared.ResultOk[float64, *Diagnostic](value)
}
