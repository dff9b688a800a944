package sqlschema

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Compile derives one rule per column and binds the resulting rule set with
// the default validator options. Columns are compiled in sorted name order.
func Compile(s Schema, opts ...Option) (*validator.Validator, error) {
	rs, err := Rules(s, opts...)
	if err != nil {
		return nil, err
	}
	return validator.Compile(rs), nil
}

// MustCompile is like Compile but panics on malformed descriptors.
func MustCompile(s Schema, opts ...Option) *validator.Validator {
	v, err := Compile(s, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// CompileTable is Compile for the ordered form; columns keep their order.
func CompileTable(t Table, opts ...Option) (*validator.Validator, error) {
	rs, err := TableRules(t, opts...)
	if err != nil {
		return nil, err
	}
	return validator.Compile(rs), nil
}

// Rules returns the rule set derived from s without binding it, so it can be
// extended before calling validator.Compile.
func Rules(s Schema, opts ...Option) (validator.Rule, error) {
	return TableRules(s.Table(""), opts...)
}

// TableRules returns the rule set derived from t without binding it.
func TableRules(t Table, opts ...Option) (validator.Rule, error) {
	o := newOptions(opts)

	fields := make([]validator.Field, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Name == "" {
			return validator.Rule{}, fmt.Errorf("%w: table %q, column #%d", ErrMissingName, t.Name, len(fields)+1)
		}
		r, err := columnRule(c, o)
		if err != nil {
			return validator.Rule{}, err
		}
		o.logger.LogAttrs(context.Background(), slog.LevelDebug, "derived column rule",
			logger.Table(t.Name),
			logger.Column(c.Name),
			slog.String("type", c.Type),
			slog.String("family", FamilyOf(c.Type).String()),
			slog.Bool("required", c.Required()),
		)
		fields = append(fields, validator.Key(c.Name, r))
	}

	rs := validator.RuleSet(fields...)
	if len(o.messages) > 0 {
		rs = rs.Messages(o.messages)
	}
	return rs, nil
}

// ColumnRule derives the rule of a single column.
func ColumnRule(c Column, opts ...Option) (validator.Rule, error) {
	return columnRule(c, newOptions(opts))
}

func columnRule(c Column, o *options) (validator.Rule, error) {
	if strings.TrimSpace(c.Type) == "" {
		return validator.Rule{}, fmt.Errorf("%w: column %q", ErrMissingType, c.Name)
	}

	t := ParseType(c.Type)

	var r validator.Rule
	switch t.Family() {
	case FamilyInteger:
		lower, upper, _ := t.IntegerBounds()
		r = validator.Number().Integer().Min(lower).Max(upper)
	case FamilyFloat:
		r = validator.Number()
	case FamilyBoolean:
		r = validator.Boolean()
	case FamilyString:
		r = validator.String().Trim()
		if n, ok := maxLength(c, t); ok {
			r = r.Max(float64(n))
		}
		if values := enumValues(c, t); len(values) > 0 {
			r = validator.AnyValid(r, values)
		}
	case FamilyDate:
		r = validator.Date().ISO()
	default:
		r = validator.Any()
	}

	if c.Required() {
		r = r.Invalid(nil).Required()
	} else {
		r = r.Allow(nil)
	}

	if !o.ignoreDefaults && isDefaultValue(c.DefaultValue) {
		r = r.Default(c.DefaultValue)
	}
	return r, nil
}

// maxLength prefers the explicit descriptor value over the type argument.
func maxLength(c Column, t SQLType) (int, bool) {
	if c.MaxLength != nil {
		return *c.MaxLength, *c.MaxLength >= 0
	}
	if t.Length != nil && t.Name != "enum" {
		return *t.Length, true
	}
	return 0, false
}

func enumValues(c Column, t SQLType) []string {
	if len(c.Values) > 0 {
		return c.Values
	}
	return t.Values
}

// isDefaultValue reports whether v can serve as a default: a boolean, number,
// string or composite value. nil is SQL NULL and never a default.
func isDefaultValue(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String,
		reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
