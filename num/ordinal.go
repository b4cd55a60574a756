package num

import "strconv"

// OrdinalSuffix returns the English ordinal suffix of n: "st", "nd", "rd" or "th".
// Negative numbers take the suffix of their absolute value.
func OrdinalSuffix(n int) string {
	rem := n % 100
	if rem < 0 {
		rem = -rem
	}
	// 11th, 12th and 13th override the last-digit rule, also for 111th, 212th...
	if rem > 10 && rem < 14 {
		return "th"
	}

	switch rem % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal returns n followed by its ordinal suffix, e.g. "22nd".
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}
