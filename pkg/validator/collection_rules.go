package validator

import (
	"reflect"
	"slices"
	"sort"
	"strconv"
)

// Object creates a rule accepting objects: map[string]any, or any map keyed
// by strings. Without keys every key is accepted as is.
func Object() Rule { return Rule{kind: KindObject} }

// RuleSet builds an object rule from fields, keeping their order.
func RuleSet(fields ...Field) Rule {
	return Object().Keys(fields...)
}

// Keys declares the object keys. Declaring a key twice replaces the earlier
// rule in place. Once keys are declared, unknown keys are handled by the
// AllowUnknown, StripUnknown and SkipFunctions options.
func (r Rule) Keys(fields ...Field) Rule {
	r.must("Keys", KindObject)
	keys := slices.Clone(r.keys)
	for _, f := range fields {
		idx := slices.IndexFunc(keys, func(existing Field) bool { return existing.Name == f.Name })
		if idx >= 0 {
			keys[idx] = f
			continue
		}
		keys = append(keys, f)
	}
	r.keys = keys
	r.hasKeys = true
	return r
}

// Fields returns a copy of the declared object keys in declaration order.
func (r Rule) Fields() []Field {
	return slices.Clone(r.keys)
}

// Type requires the value to be an instance of the type of sample (or a
// pointer to it) instead of a map, e.g. Object().Type(bson.ObjectID{}).
func (r Rule) Type(sample any) Rule {
	r.must("Type", KindObject)
	r.objType = reflect.TypeOf(sample)
	return r
}

// Array creates a rule accepting slices and arrays.
func Array() Rule { return Rule{kind: KindArray} }

// Items validates every element with one of the given rules.
func (r Rule) Items(rules ...Rule) Rule {
	r.must("Items", KindArray)
	r.items = append(slices.Clip(r.items), rules...)
	return r
}

// Unique rejects arrays holding the same value twice.
func (r Rule) Unique() Rule {
	r.must("Unique", KindArray)
	r.unique = true
	return r
}

func (r Rule) baseObject(st *state, value any, path []string, key string) (any, bool) {
	if r.objType != nil {
		return r.checkObjectType(st, value, path, key)
	}

	m, ok := toMap(value)
	if !ok {
		st.report(path, key, "object.base", map[string]any{"value": value})
		return value, false
	}

	out := m
	if r.hasKeys {
		out = r.validateKeys(st, m, path)
	}

	size := float64(len(out))
	if r.min != nil && size < *r.min {
		st.report(path, key, "object.min", map[string]any{"limit": *r.min})
	}
	if r.max != nil && size > *r.max {
		st.report(path, key, "object.max", map[string]any{"limit": *r.max})
	}
	return out, true
}

func (r Rule) validateKeys(st *state, m map[string]any, path []string) map[string]any {
	out := make(map[string]any, len(m))
	known := make(map[string]struct{}, len(r.keys))

	for _, f := range r.keys {
		known[f.Name] = struct{}{}
		if st.done() {
			break
		}
		in, present := m[f.Name]
		v, ok := f.Rule.run(st, in, present, childPath(path, f.Name), f.Name)
		if ok {
			out[f.Name] = v
		}
	}

	unknown := make([]string, 0)
	for name := range m {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	for _, name := range unknown {
		v := m[name]
		switch {
		case st.opts.StripUnknown:
		case st.opts.AllowUnknown:
			out[name] = v
		case st.opts.SkipFunctions && isFunc(v):
			out[name] = v
		default:
			st.report(childPath(path, name), name, "object.allowUnknown", map[string]any{"value": v})
		}
	}
	return out
}

func (r Rule) checkObjectType(st *state, value any, path []string, key string) (any, bool) {
	t := reflect.TypeOf(value)
	if t == r.objType || (t != nil && t.Kind() == reflect.Pointer && t.Elem() == r.objType && !reflect.ValueOf(value).IsNil()) {
		return value, true
	}

	if t == nil || !isObjectKind(t) {
		st.report(path, key, "object.base", map[string]any{"value": value})
		return value, false
	}
	st.report(path, key, "object.type", map[string]any{"type": r.objType.Name(), "value": value})
	return value, false
}

func (r Rule) baseArray(st *state, value any, path []string, key string) (any, bool) {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		st.report(path, key, "array.base", map[string]any{"value": value})
		return value, false
	}

	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}

	if len(r.items) > 0 {
		for i, item := range out {
			if st.done() {
				break
			}
			idx := strconv.Itoa(i)
			out[i] = r.validateItem(st, item, childPath(path, idx), idx)
		}
	}

	size := float64(len(out))
	if r.min != nil && size < *r.min {
		st.report(path, key, "array.min", map[string]any{"limit": *r.min})
	}
	if r.max != nil && size > *r.max {
		st.report(path, key, "array.max", map[string]any{"limit": *r.max})
	}
	if r.length != nil && size != *r.length {
		st.report(path, key, "array.length", map[string]any{"limit": *r.length})
	}
	if r.unique {
		for i := 1; i < len(out); i++ {
			if containsValue(out[:i], out[i]) {
				st.report(childPath(path, strconv.Itoa(i)), key, "array.unique", map[string]any{"pos": i, "value": out[i]})
			}
		}
	}
	return out, true
}

// validateItem accepts the item with the first matching rule; when none
// matches, the errors of the first rule are reported.
func (r Rule) validateItem(st *state, item any, path []string, key string) any {
	var first *state
	for _, rule := range r.items {
		sub := st.fork()
		v, _ := rule.run(sub, item, true, path, key)
		if len(sub.errs) == 0 {
			return v
		}
		if first == nil {
			first = sub
		}
	}
	for _, err := range first.errs {
		if st.done() {
			break
		}
		st.errs = append(st.errs, err)
	}
	return item
}

func toMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(value)
	if value == nil || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func isObjectKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Map, reflect.Struct, reflect.Pointer, reflect.Interface:
		return true
	default:
		return false
	}
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
