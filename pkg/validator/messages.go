package validator

import (
	"embed"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Messages maps a rule category ("any", "string", "number", ...) to rule names
// and their message templates. Templates use named placeholders in the form
// %{name}; the engine always provides %{key} and, depending on the rule,
// %{limit}, %{valids}, %{value}, %{pattern}, %{type} and %{pos}.
type Messages map[string]map[string]string

//go:embed lang/*.yaml
var languages embed.FS

var (
	engineLanguage = sync.OnceValue(func() Messages { return mustLoadLanguage("lang/engine.yaml") })
	catalog        = sync.OnceValue(func() Messages { return mustLoadLanguage("lang/catalog.yaml") })
)

// Catalog returns a copy of the default language pack bound by Compile.
func Catalog() Messages {
	return catalog().Clone()
}

// EngineLanguage returns a copy of the built-in messages used when neither a
// rule overlay nor the bound language defines a template.
func EngineLanguage() Messages {
	return engineLanguage().Clone()
}

func mustLoadLanguage(name string) Messages {
	raw, err := languages.ReadFile(name)
	if err != nil {
		panic(errors.Join(ErrFailedToLoadLanguage, err))
	}

	var m Messages
	if err := yaml.Unmarshal(raw, &m); err != nil {
		panic(errors.Join(ErrFailedToLoadLanguage, fmt.Errorf("%s: %w", name, err)))
	}
	return m
}

// Clone returns a deep copy of the messages.
func (m Messages) Clone() Messages {
	if m == nil {
		return nil
	}
	out := make(Messages, len(m))
	for category, rules := range m {
		out[category] = maps.Clone(rules)
	}
	return out
}

// Merge returns a new Messages holding m deep-merged with overlay.
// Templates from overlay win on conflicting category/rule pairs; neither
// input is modified.
func (m Messages) Merge(overlay Messages) Messages {
	out := m.Clone()
	if out == nil {
		out = make(Messages, len(overlay))
	}
	for category, rules := range overlay {
		if out[category] == nil {
			out[category] = make(map[string]string, len(rules))
		}
		maps.Copy(out[category], rules)
	}
	return out
}

// Lookup returns the template for a "category.rule" code.
func (m Messages) Lookup(code string) (string, bool) {
	category, rule, ok := strings.Cut(code, ".")
	if !ok {
		return "", false
	}
	tmpl, ok := m[category][rule]
	return tmpl, ok
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render substitutes %{name} placeholders. Unknown placeholders are kept as is.
func render(tmpl string, params map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return formatValue(val)
		}
		return match
	})
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(time.RFC3339)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		return "[" + strings.Join(val, ", ") + "]"
	default:
		return fmt.Sprint(val)
	}
}
