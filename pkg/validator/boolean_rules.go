package validator

import (
	"strings"

	"github.com/spf13/cast"
)

// Boolean creates a rule accepting booleans. With coercion enabled, the
// strings accepted by strconv.ParseBool and the numbers 0 and 1 are converted.
func Boolean() Rule { return Rule{kind: KindBoolean} }

func (r Rule) baseBoolean(st *state, value any, path []string, key string) (any, bool) {
	if b, ok := value.(bool); ok {
		return b, true
	}
	if st.opts.Convert {
		if b, ok := toBoolean(value); ok {
			return b, true
		}
	}
	st.report(path, key, "boolean.base", map[string]any{"value": value})
	return value, false
}

func toBoolean(value any) (bool, bool) {
	if s, ok := value.(string); ok {
		b, err := cast.ToBoolE(strings.TrimSpace(s))
		return b, err == nil
	}
	_, f, ok := toNumber(value, true)
	if !ok || (f != 0 && f != 1) {
		return false, false
	}
	return f == 1, true
}
