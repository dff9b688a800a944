package introspect

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
)

var defaultKeywords = map[string]bool{
	"current_timestamp": true,
	"current_date":      true,
	"current_time":      true,
	"localtimestamp":    true,
	"localtime":         true,
	"current_user":      true,
	"session_user":      true,
}

// parseDefault turns a column default as reported by the catalog into a
// literal value. Expressions are dropped and yield nil, as does NULL.
func parseDefault(d Dialect, raw *string, family sqlschema.Family) any {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if d == Postgres {
		s = stripCast(s)
	}
	s = stripParens(s)

	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}

	if lit, ok := unquote(s); ok {
		return typedLiteral(lit, family, true)
	}

	lower := strings.ToLower(s)
	if defaultKeywords[lower] || strings.ContainsAny(s, "()") {
		return nil
	}
	if v := typedLiteral(s, family, false); v != nil {
		return v
	}
	// MySQL reports string defaults without quotes.
	if d == MySQL && family == sqlschema.FamilyString {
		return s
	}
	return nil
}

// typedLiteral converts a literal to the Go value matching the family.
// quoted literals fall back to the string itself for string-like families.
func typedLiteral(s string, family sqlschema.Family, quoted bool) any {
	switch family {
	case sqlschema.FamilyInteger:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		return nil
	case sqlschema.FamilyFloat:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return nil
	case sqlschema.FamilyBoolean:
		switch strings.ToLower(s) {
		case "1", "t", "true", "y", "yes", "on", "b'1'":
			return true
		case "0", "f", "false", "n", "no", "off", "b'0'":
			return false
		}
		return nil
	case sqlschema.FamilyString, sqlschema.FamilyDate:
		if quoted {
			return s
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return s
		}
		return nil
	default:
		if quoted {
			return s
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return nil
	}
}

// stripCast removes a trailing "::type" outside of quotes.
func stripCast(s string) string {
	quoted := false
	for i := 0; i < len(s)-1; i++ {
		switch {
		case s[i] == '\'':
			quoted = !quoted
		case !quoted && s[i] == ':' && s[i+1] == ':':
			return strings.TrimSpace(s[:i])
		}
	}
	return s
}

// stripParens removes balanced outer parentheses, as in "(-1)".
func stripParens(s string) string {
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' && !strings.ContainsAny(s[1:len(s)-1], "()") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// unquote reads a single-quoted SQL string literal. Embedded quotes are
// doubled or backslash-escaped.
func unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return "", false
	}
	var b strings.Builder
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			i++
			b.WriteByte(body[i])
		case c == '\'' && i+1 < len(body) && body[i+1] == '\'':
			i++
			b.WriteByte('\'')
		case c == '\'':
			// unescaped quote inside: not a plain literal
			return "", false
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}
