package validator

import (
	"strconv"

	playground "github.com/go-playground/validator/v10"
)

// checks evaluates leaf constraints (bounds, lengths, formats) on values that
// already passed the base type check. The instance caches parsed tags and is
// safe for concurrent use.
var checks = playground.New()

// satisfies reports whether value passes the go-playground tag.
func satisfies(value any, tag string) bool {
	return checks.Var(value, tag) == nil
}

// boundTag formats a numeric bound, e.g. gte=-32768.
func boundTag(op string, limit float64) string {
	return op + "=" + strconv.FormatFloat(limit, 'f', -1, 64)
}

// lengthTag formats a length bound; go-playground parses length params as integers.
func lengthTag(op string, limit float64) string {
	return op + "=" + strconv.Itoa(int(limit))
}
