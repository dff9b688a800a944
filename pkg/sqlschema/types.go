package sqlschema

import (
	"math"
	"strconv"
	"strings"
)

// Family is the closed set of rule families a SQL type can map to.
type Family uint8

const (
	// FamilyAny is the explicit fallback for unknown and custom types.
	FamilyAny Family = iota
	FamilyInteger
	FamilyFloat
	FamilyBoolean
	FamilyString
	FamilyDate
)

var familyNames = [...]string{
	FamilyAny:     "any",
	FamilyInteger: "integer",
	FamilyFloat:   "float",
	FamilyBoolean: "boolean",
	FamilyString:  "string",
	FamilyDate:    "date",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return familyNames[FamilyAny]
}

var familyByType = map[string]Family{
	"tinyint":   FamilyInteger,
	"smallint":  FamilyInteger,
	"mediumint": FamilyInteger,
	"int":       FamilyInteger,
	"integer":   FamilyInteger,
	"bigint":    FamilyInteger,

	"float":   FamilyFloat,
	"double":  FamilyFloat,
	"real":    FamilyFloat,
	"numeric": FamilyFloat,
	"decimal": FamilyFloat,

	"boolean": FamilyBoolean,
	"bit":     FamilyBoolean,

	"char":     FamilyString,
	"varchar":  FamilyString,
	"text":     FamilyString,
	"tinytext": FamilyString,
	"enum":     FamilyString,

	"datetime": FamilyDate,
	"date":     FamilyDate,
}

// integerMax holds the unsigned maximum of every integer type.
var integerMax = map[string]float64{
	"tinyint":   255,
	"smallint":  65535,
	"mediumint": 16777215,
	"int":       4294967295,
	"integer":   4294967295,
	"bigint":    18446744073709551615,
}

// FamilyOf maps a SQL type name to its rule family. Matching is
// case-insensitive and ignores length arguments and modifiers, so
// "VARCHAR(255)" is a string and "int(11) unsigned" an integer. Every name
// outside the dispatch table maps to FamilyAny.
func FamilyOf(typeName string) Family {
	return ParseType(typeName).Family()
}

// SQLType is a parsed column type such as "varchar(255)", "int(11) unsigned"
// or "enum('a','b')".
type SQLType struct {
	// Name is the lower-cased base type name, e.g. "varchar".
	Name string
	// Length is the first numeric argument, e.g. 255 for varchar(255).
	Length *int
	// Unsigned is set by the "unsigned" modifier.
	Unsigned bool
	// Values holds the members of enum and set types, case preserved.
	Values []string
}

// ParseType parses a raw SQL type name.
func ParseType(raw string) SQLType {
	s := strings.TrimSpace(raw)

	head, args, tail := s, "", ""
	if open := strings.IndexByte(s, '('); open >= 0 {
		if end := strings.LastIndexByte(s, ')'); end > open {
			head, args, tail = s[:open], s[open+1:end], s[end+1:]
		}
	}

	var t SQLType
	var name []string
	for _, word := range strings.Fields(strings.ToLower(head + " " + tail)) {
		switch word {
		case "unsigned":
			t.Unsigned = true
		case "signed", "zerofill":
		default:
			name = append(name, word)
		}
	}
	t.Name = strings.Join(name, " ")

	switch {
	case args == "":
	case t.Name == "enum" || t.Name == "set":
		t.Values = parseQuotedList(args)
	default:
		first, _, _ := strings.Cut(args, ",")
		if n, err := strconv.Atoi(strings.TrimSpace(first)); err == nil && n >= 0 {
			t.Length = &n
		}
	}
	return t
}

// Family returns the rule family of the type.
func (t SQLType) Family() Family {
	return familyByType[t.Name]
}

// IntegerBounds returns the accepted range of an integer type: the unsigned
// maximum of the type, and as minimum the negated half of the value count,
// or zero for unsigned columns. ok is false for non integer types.
func (t SQLType) IntegerBounds() (lower, upper float64, ok bool) {
	upper, ok = integerMax[t.Name]
	if !ok {
		return 0, 0, false
	}
	if t.Unsigned {
		return 0, upper, true
	}
	return -math.Floor((upper + 1) / 2), upper, true
}

func (t SQLType) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	switch {
	case len(t.Values) > 0:
		quoted := make([]string, len(t.Values))
		for i, v := range t.Values {
			quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
		}
		b.WriteString("(" + strings.Join(quoted, ",") + ")")
	case t.Length != nil:
		b.WriteString("(" + strconv.Itoa(*t.Length) + ")")
	}
	if t.Unsigned {
		b.WriteString(" unsigned")
	}
	return b.String()
}

// parseQuotedList reads the single-quoted members of an enum or set
// definition. Quotes are escaped by doubling them or with a backslash.
func parseQuotedList(args string) []string {
	var (
		values  []string
		current strings.Builder
		quoted  bool
	)
	for i := 0; i < len(args); i++ {
		c := args[i]
		switch {
		case !quoted:
			if c == '\'' {
				quoted = true
				current.Reset()
			}
		case c == '\\' && i+1 < len(args):
			i++
			current.WriteByte(args[i])
		case c == '\'' && i+1 < len(args) && args[i+1] == '\'':
			i++
			current.WriteByte('\'')
		case c == '\'':
			quoted = false
			values = append(values, current.String())
		default:
			current.WriteByte(c)
		}
	}
	return values
}
