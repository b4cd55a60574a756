package locale

import "errors"

// Configuration errors, wrapped with the offending tag or path.
var (
	// ErrNoLocales indicates a configuration without any locale conventions.
	ErrNoLocales = errors.New("no locales configured")

	// ErrUnknownDefault indicates that the default tag has no convention.
	ErrUnknownDefault = errors.New("default locale has no convention")

	// ErrInvalidTag indicates a locale key that is not a BCP 47 tag.
	ErrInvalidTag = errors.New("invalid language tag")

	ErrEmptyDecimalPoint = errors.New("decimal point must not be empty")
)
