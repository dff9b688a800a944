package validator

import "errors"

var (
	// ErrValidationFailed is returned by Result.Err when the result carries violations.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRule signals a programming error while building a rule: a builder
	// method called on a rule kind that does not support it, an empty set of
	// allowed values or an invalid pattern. Builders panic with an error wrapping it.
	ErrInvalidRule = errors.New("invalid rule definition")

	// ErrFailedToLoadLanguage is raised when an embedded message language cannot be parsed.
	ErrFailedToLoadLanguage = errors.New("failed to load message language")
)
