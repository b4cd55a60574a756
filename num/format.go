package num

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"numkit/shared"
)

type FormatResult = shared.Result[string, *Diagnostic]

// Format renders number with exactly places fractional digits, rounding half
// away from zero. The integer part is grouped in threes with
// thousandsSeparator and the fraction is joined with decimalPoint; with
// places == 0 neither a decimal point nor a fraction is written.
//
//	Format(1200.05, 2, ".", ",") // "1,200.05"
//	Format(1200.05, 2, ",", ".") // "1.200,05"
//	Format(1200.05, 2, ",", " ") // "1 200,05"
//
// Separators are taken as given; resolving them for a locale is up to the caller.
func Format(number float64, places int, decimalPoint, thousandsSeparator string) *FormatResult {
	if places < 0 {
		return shared.ResultErr[string](
			invalidArgument("places", "decimal places must not be negative, got %d", places),
		)
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return shared.ResultErr[string](
			invalidArgument("number", "cannot format non-finite value %v", number),
		)
	}

	// scalar.Round never returns negative zero, so "-0.00" cannot occur.
	rounded := scalar.Round(number, places)
	digits := strconv.FormatFloat(math.Abs(rounded), 'f', places, 64)
	intPart, fracPart, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if rounded < 0 {
		b.WriteByte('-')
	}
	writeGrouped(&b, intPart, thousandsSeparator)
	if places > 0 {
		b.WriteString(decimalPoint)
		b.WriteString(fracPart)
	}
	return shared.ResultOk[string, *Diagnostic](b.String())
}

// writeGrouped writes the decimal digit string with sep between every
// group of three digits, counting from the right.
func writeGrouped(b *strings.Builder, digits, sep string) {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
}
