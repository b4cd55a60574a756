package locale

import "numkit/num"

// Formatter formats numbers with the separators of one convention.
type Formatter struct {
	conv Convention
}

func NewFormatter(conv Convention) *Formatter {
	return &Formatter{conv: conv}
}

// Convention returns the separators used by f.
func (f *Formatter) Convention() Convention {
	return f.conv
}

// Format formats number with the numeric separators.
func (f *Formatter) Format(number float64, places int) *num.FormatResult {
	return num.Format(number, places, f.conv.Numeric.DecimalPoint, f.conv.Numeric.ThousandsSeparator)
}

// FormatMonetary formats number with the monetary separators.
func (f *Formatter) FormatMonetary(number float64, places int) *num.FormatResult {
	return num.Format(number, places, f.conv.Monetary.DecimalPoint, f.conv.Monetary.ThousandsSeparator)
}
