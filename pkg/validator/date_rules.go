package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// isoDateRegex accepts ISO 8601 dates and date-times; the time part may be
// separated by "T" or a space.
var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(?:[T ]\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?:Z|[+-]\d{2}(?::?\d{2})?)?)?$`)

// isoLayouts covers every form isoDateRegex accepts. Fractional seconds need
// no layout of their own: time.Parse accepts them after the seconds field.
var isoLayouts = func() []string {
	layouts := []string{time.DateOnly}
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15:04", "15:04:05"} {
			for _, zone := range []string{"", "Z07:00", "Z0700", "Z07"} {
				layouts = append(layouts, "2006-01-02"+sep+clock+zone)
			}
		}
	}
	return layouts
}()

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date creates a rule accepting time.Time values. With coercion enabled,
// date strings and millisecond timestamps are converted to time.Time.
func Date() Rule { return Rule{kind: KindDate} }

// ISO restricts string input to ISO 8601 dates.
func (r Rule) ISO() Rule {
	r.must("ISO", KindDate)
	r.iso = true
	return r
}

func (r Rule) baseDate(st *state, value any, path []string, key string) (any, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}

	code := "date.base"
	if r.iso {
		code = "date.iso"
	}
	if !st.opts.Convert {
		st.report(path, key, code, map[string]any{"value": value})
		return value, false
	}

	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if isoDateRegex.MatchString(s) {
			if t, ok := parseISO(s); ok {
				return t, true
			}
		}
		if r.iso {
			st.report(path, key, code, map[string]any{"value": value})
			return value, false
		}
		t, err := cast.ToTimeE(s)
		if err != nil {
			st.report(path, key, code, map[string]any{"value": value})
			return value, false
		}
		return t, true
	}

	if _, f, ok := toNumber(value, true); ok && !r.iso {
		return time.UnixMilli(int64(f)).UTC(), true
	}

	st.report(path, key, code, map[string]any{"value": value})
	return value, false
}
