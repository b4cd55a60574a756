package shared

// Ternary is a grammar sugar function for the ternary operator in other languages.
func Ternary[T any](condition bool, forTrue, forFalse T) T {
	if condition {
		return forTrue
	}
	return forFalse
}
