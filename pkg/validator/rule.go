package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
)

// Kind identifies the base type a Rule validates.
type Kind string

const (
	KindAny          Kind = "any"
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindBoolean      Kind = "boolean"
	KindDate         Kind = "date"
	KindObject       Kind = "object"
	KindArray        Kind = "array"
	KindAlternatives Kind = "alternatives"
)

type presence uint8

const (
	presenceOptional presence = iota
	presenceRequired
	presenceForbidden
)

// Field binds a rule to an object key.
type Field struct {
	Name string
	Rule Rule
}

// Key is a shorthand for building a Field.
func Key(name string, rule Rule) Field {
	return Field{Name: name, Rule: rule}
}

// Rule is an immutable validation rule. Every builder method returns a
// modified copy and leaves the receiver untouched, so a rule can be shared
// and extended from several places.
type Rule struct {
	kind     Kind
	label    string
	presence presence
	messages Messages

	hasDefault bool
	def        any

	allowed []any
	invalid []any
	only    bool

	// bounds: number value, string length, array items or object children
	min    *float64
	max    *float64
	length *float64

	// string
	trim       bool
	lowercase  bool
	uppercase  bool
	allowEmpty bool
	formats    []format
	patterns   []*regexp.Regexp

	// number
	integer bool

	// date
	iso bool

	// object
	keys    []Field
	hasKeys bool
	objType reflect.Type

	// array
	items  []Rule
	unique bool

	// alternatives
	alternatives []Rule
}

// Any creates a rule accepting every value.
func Any() Rule { return Rule{kind: KindAny} }

// Kind returns the base type of the rule.
func (r Rule) Kind() Kind {
	if r.kind == "" {
		return KindAny
	}
	return r.kind
}

// Label sets the name rendered as %{key} in messages.
func (r Rule) Label(name string) Rule {
	r.label = name
	return r
}

// Required makes an absent value a violation.
func (r Rule) Required() Rule {
	r.presence = presenceRequired
	return r
}

// Optional allows the value to be absent. This is the default.
func (r Rule) Optional() Rule {
	r.presence = presenceOptional
	return r
}

// Forbidden makes any present value a violation.
func (r Rule) Forbidden() Rule {
	r.presence = presenceForbidden
	return r
}

// Allow whitelists values that are accepted before any type check.
// Allow(nil) is how a rule accepts null.
func (r Rule) Allow(values ...any) Rule {
	r.allowed = append(slices.Clip(r.allowed), values...)
	r.invalid = without(r.invalid, values)
	return r
}

// Valid restricts the rule to the given values (and any previously allowed ones).
func (r Rule) Valid(values ...any) Rule {
	r = r.Allow(values...)
	r.only = true
	return r
}

// Invalid blacklists values. Invalid(nil) forbids null.
func (r Rule) Invalid(values ...any) Rule {
	r.invalid = append(slices.Clip(r.invalid), values...)
	r.allowed = without(r.allowed, values)
	return r
}

// Default sets the value substituted when the input is absent. The default
// is returned as is, without being validated.
func (r Rule) Default(value any) Rule {
	r.hasDefault = true
	r.def = value
	return r
}

// Messages attaches a message overlay to the rule. Templates in the overlay
// apply to violations reported by this rule and every rule nested in it.
func (r Rule) Messages(m Messages) Rule {
	if r.messages == nil {
		r.messages = m.Clone()
		return r
	}
	r.messages = r.messages.Merge(m)
	return r
}

// Min sets the lower bound: the value of a number, the length of a string,
// the number of array items or the number of object keys.
func (r Rule) Min(limit float64) Rule {
	r.must("Min", KindNumber, KindString, KindArray, KindObject)
	r.min = &limit
	return r
}

// Max sets the upper bound, see Min.
func (r Rule) Max(limit float64) Rule {
	r.must("Max", KindNumber, KindString, KindArray, KindObject)
	r.max = &limit
	return r
}

// Length requires an exact string length or array size.
func (r Rule) Length(limit int) Rule {
	r.must("Length", KindString, KindArray)
	l := float64(limit)
	r.length = &l
	return r
}

// Validate runs the rule with the engine's own options: abort on the first
// violation, coercion on, unknown object keys rejected, engine messages.
// Errors are not deduplicated; use the package level Validate for that.
func (r Rule) Validate(data any) Result {
	return execute(r, engineOptions(), data)
}

func (r Rule) must(method string, kinds ...Kind) {
	if !slices.Contains(kinds, r.Kind()) {
		panic(fmt.Errorf("%w: %s is not supported by %s rules", ErrInvalidRule, method, r.Kind()))
	}
}

func (r Rule) run(st *state, value any, present bool, path []string, key string) (any, bool) {
	if r.label != "" {
		key = r.label
	}
	if len(r.messages) > 0 {
		st.push(r.messages)
		defer st.pop()
	}

	if !present {
		if r.presence == presenceRequired {
			st.report(path, key, "any.required", nil)
			return nil, false
		}
		if r.hasDefault {
			return r.def, true
		}
		return nil, false
	}

	if r.presence == presenceForbidden {
		st.report(path, key, "any.unknown", nil)
		return value, true
	}
	if containsValue(r.allowed, value) {
		return value, true
	}
	if containsValue(r.invalid, value) {
		st.report(path, key, "any.invalid", map[string]any{"value": value})
		return value, true
	}

	out, ok := r.base(st, value, path, key)
	if !ok {
		return value, true
	}

	if containsValue(r.allowed, out) {
		return out, true
	}
	if r.only {
		st.report(path, key, "any.allowOnly", map[string]any{"valids": r.allowed, "value": out})
		return out, true
	}

	return r.test(st, out, path, key), true
}

// base checks, and when enabled coerces, the value against the rule kind.
// It reports its own violations and returns false when the value is unusable.
func (r Rule) base(st *state, value any, path []string, key string) (any, bool) {
	switch r.Kind() {
	case KindString:
		return r.baseString(st, value, path, key)
	case KindNumber:
		return r.baseNumber(st, value, path, key)
	case KindBoolean:
		return r.baseBoolean(st, value, path, key)
	case KindDate:
		return r.baseDate(st, value, path, key)
	case KindObject:
		return r.baseObject(st, value, path, key)
	case KindArray:
		return r.baseArray(st, value, path, key)
	case KindAlternatives:
		return r.baseAlternatives(st, value, path, key)
	default:
		return value, true
	}
}

// test applies the kind specific constraints to a value that passed base.
func (r Rule) test(st *state, value any, path []string, key string) any {
	switch r.Kind() {
	case KindString:
		return r.testString(st, value.(string), path, key)
	case KindNumber:
		r.testNumber(st, value, path, key)
	}
	return value
}

func containsValue(set []any, value any) bool {
	for _, item := range set {
		if sameValue(item, value) {
			return true
		}
	}
	return false
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

func without(set []any, values []any) []any {
	if len(set) == 0 {
		return set
	}
	out := make([]any, 0, len(set))
	for _, item := range set {
		if !containsValue(values, item) {
			out = append(out, item)
		}
	}
	return out
}

