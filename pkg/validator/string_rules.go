package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// String creates a rule accepting strings. Empty strings are rejected unless
// AllowEmpty is set.
func String() Rule { return Rule{kind: KindString} }

// Trim removes surrounding whitespace before any other check. Without
// coercion the value must already be trimmed.
func (r Rule) Trim() Rule {
	r.must("Trim", KindString)
	r.trim = true
	return r
}

// Lowercase converts the value to lower case before constraints are checked.
func (r Rule) Lowercase() Rule {
	r.must("Lowercase", KindString)
	r.lowercase = true
	r.uppercase = false
	return r
}

// Uppercase converts the value to upper case before constraints are checked.
func (r Rule) Uppercase() Rule {
	r.must("Uppercase", KindString)
	r.uppercase = true
	r.lowercase = false
	return r
}

// AllowEmpty accepts the empty string.
func (r Rule) AllowEmpty() Rule {
	r.must("AllowEmpty", KindString)
	r.allowEmpty = true
	return r
}

// Pattern requires the normalized value to match expr. Invalid expressions panic.
func (r Rule) Pattern(expr string) Rule {
	r.must("Pattern", KindString)
	re, err := regexp.Compile(expr)
	if err != nil {
		panic(fmt.Errorf("%w: pattern %q: %w", ErrInvalidRule, expr, err))
	}
	return r.Regex(re)
}

// Regex is Pattern with a precompiled expression.
func (r Rule) Regex(re *regexp.Regexp) Rule {
	r.must("Regex", KindString)
	r.patterns = append(slices.Clip(r.patterns), re)
	return r
}

func (r Rule) baseString(st *state, value any, path []string, key string) (any, bool) {
	s, ok := value.(string)
	if !ok {
		st.report(path, key, "string.base", map[string]any{"value": value})
		return value, false
	}

	if st.opts.Convert {
		if r.trim {
			s = strings.TrimSpace(s)
		}
		switch {
		case r.lowercase:
			s = strings.ToLower(s)
		case r.uppercase:
			s = strings.ToUpper(s)
		}
	}

	if s == "" && !r.allowEmpty {
		st.report(path, key, "any.empty", nil)
		return s, false
	}
	return s, true
}

func (r Rule) testString(st *state, s string, path []string, key string) string {
	if !st.opts.Convert {
		if r.trim && s != strings.TrimSpace(s) {
			st.report(path, key, "string.trim", map[string]any{"value": s})
		}
		if r.lowercase && s != strings.ToLower(s) {
			st.report(path, key, "string.lowercase", map[string]any{"value": s})
		}
		if r.uppercase && s != strings.ToUpper(s) {
			st.report(path, key, "string.uppercase", map[string]any{"value": s})
		}
	}

	if r.min != nil && !satisfies(s, lengthTag("min", *r.min)) {
		st.report(path, key, "string.min", map[string]any{"limit": *r.min, "value": s})
	}
	if r.max != nil && !satisfies(s, lengthTag("max", *r.max)) {
		st.report(path, key, "string.max", map[string]any{"limit": *r.max, "value": s})
	}
	if r.length != nil && !satisfies(s, lengthTag("len", *r.length)) {
		st.report(path, key, "string.length", map[string]any{"limit": *r.length, "value": s})
	}
	for _, f := range r.formats {
		if !satisfies(s, f.tag) {
			st.report(path, key, "string."+f.name, map[string]any{"value": s})
		}
	}
	for _, re := range r.patterns {
		if !re.MatchString(s) {
			st.report(path, key, "string.regex", map[string]any{"pattern": re.String(), "value": s})
		}
	}
	return s
}
