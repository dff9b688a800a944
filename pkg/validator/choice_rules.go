package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Alternatives creates a rule that accepts a value matching any of the given
// rules, tried in order. The first match wins and its coerced value is kept.
func Alternatives(rules ...Rule) Rule {
	return Rule{kind: KindAlternatives}.Try(rules...)
}

// Try appends alternatives.
func (r Rule) Try(rules ...Rule) Rule {
	r.must("Try", KindAlternatives)
	r.alternatives = append(slices.Clip(r.alternatives), rules...)
	return r
}

// baseAlternatives reports the violations of every tried alternative when
// none matches, so each branch contributes its own message.
func (r Rule) baseAlternatives(st *state, value any, path []string, key string) (any, bool) {
	if len(r.alternatives) == 0 {
		st.report(path, key, "alternatives.base", map[string]any{"value": value})
		return value, false
	}

	var collected ValidationErrors
	for _, alt := range r.alternatives {
		sub := st.fork()
		v, _ := alt.run(sub, value, true, path, key)
		if len(sub.errs) == 0 {
			return v, true
		}
		collected = append(collected, sub.errs...)
	}

	for _, err := range collected {
		if st.done() {
			break
		}
		st.errs = append(st.errs, err)
	}
	return value, false
}

// AnyValid restricts a string rule to a closed set of values. The check runs
// on the normalized value, so Trim or Lowercase on the wrapped rule apply
// first, and reports "<key> must be one of [v1, v2, ...]." on mismatch.
//
// Values are matched literally: regular expression metacharacters in them
// are escaped. AnyValid panics when values is empty or rule is not a string rule.
func AnyValid(rule Rule, values []string) Rule {
	if len(values) == 0 {
		panic(fmt.Errorf("%w: AnyValid requires at least one value", ErrInvalidRule))
	}
	rule.must("AnyValid", KindString)

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	re := regexp.MustCompile("^(" + strings.Join(quoted, "|") + ")$")

	return rule.Regex(re).Messages(Messages{
		"string": {"regex": "%{key} must be one of [" + strings.Join(values, ", ") + "]."},
	})
}
