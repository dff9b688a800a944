package validator

// Options controls how a bound rule is executed.
type Options struct {
	// AbortEarly stops at the first violation instead of collecting all of them.
	AbortEarly bool
	// Convert enables implicit coercion: numeric, boolean and date strings are
	// converted and string normalizations (trim, case) rewrite the value.
	Convert bool
	// AllowUnknown keeps object keys that have no rule instead of reporting them.
	AllowUnknown bool
	// StripUnknown removes object keys that have no rule from the output.
	StripUnknown bool
	// SkipFunctions ignores unknown object keys holding function values.
	SkipFunctions bool
	// Messages is the language bound to the validator.
	Messages Messages
}

// DefaultOptions returns the execution policy and language pack bound by
// Compile. Every call returns a fresh copy, so callers may extend it freely.
func DefaultOptions() Options {
	return Options{
		AbortEarly:    false,
		Convert:       true,
		AllowUnknown:  true,
		StripUnknown:  true,
		SkipFunctions: true,
		Messages:      Catalog(),
	}
}

// engineOptions is the policy used when a rule is executed without Compile.
func engineOptions() Options {
	return Options{
		AbortEarly: true,
		Convert:    true,
	}
}
