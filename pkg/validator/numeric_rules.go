package validator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Number creates a rule accepting numeric values. With coercion enabled,
// numeric strings are converted to float64 (int64 for integer rules).
func Number() Rule { return Rule{kind: KindNumber} }

// Integer rejects numbers with a fractional part.
func (r Rule) Integer() Rule {
	r.must("Integer", KindNumber)
	r.integer = true
	return r
}

func (r Rule) baseNumber(st *state, value any, path []string, key string) (any, bool) {
	if r.integer && st.opts.Convert {
		if n, ok := toExactInteger(value); ok {
			return n, true
		}
	}

	out, f, ok := toNumber(value, st.opts.Convert)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		st.report(path, key, "number.base", map[string]any{"value": value})
		return value, false
	}

	if r.integer && f != math.Trunc(f) {
		st.report(path, key, "number.integer", map[string]any{"value": value})
		return out, false
	}
	if r.integer && out != value && f >= math.MinInt64 && f < math.MaxInt64 {
		out = int64(f)
	}
	return out, true
}

func (r Rule) testNumber(st *state, value any, path []string, key string) {
	_, f, _ := toNumber(value, false)
	if r.min != nil && !satisfies(f, boundTag("gte", *r.min)) {
		st.report(path, key, "number.min", map[string]any{"limit": *r.min, "value": value})
	}
	if r.max != nil && !satisfies(f, boundTag("lte", *r.max)) {
		st.report(path, key, "number.max", map[string]any{"limit": *r.max, "value": value})
	}
}

// toExactInteger parses integer strings and json.Number without going
// through float64, so values beyond 2^53 keep every digit.
func toExactInteger(value any) (any, bool) {
	var s string
	switch v := value.(type) {
	case json.Number:
		s = string(v)
	case string:
		s = strings.TrimSpace(v)
	default:
		return nil, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, true
	}
	return nil, false
}

// toNumber returns the value to pass through, its float64 form and whether
// it is numeric. Native numbers pass through with their own type; strings and
// json.Number are converted only when convert is set.
func toNumber(value any, convert bool) (any, float64, bool) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := cast.ToFloat64E(v)
		return value, f, err == nil
	case json.Number:
		if !convert {
			return value, 0, false
		}
		f, err := v.Float64()
		return f, f, err == nil
	case string:
		if !convert {
			return value, 0, false
		}
		f, err := cast.ToFloat64E(strings.TrimSpace(v))
		return f, f, err == nil
	default:
		return value, 0, false
	}
}
