package introspect

import (
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
)

// typeAliases maps dialect spellings onto the names sqlschema dispatches on.
var typeAliases = map[string]string{
	"character varying":           "varchar",
	"varying character":           "varchar",
	"nvarchar":                    "varchar",
	"character":                   "char",
	"bpchar":                      "char",
	"nchar":                       "char",
	"mediumtext":                  "text",
	"longtext":                    "text",
	"clob":                        "text",
	"citext":                      "text",
	"int2":                        "smallint",
	"int4":                        "integer",
	"int8":                        "bigint",
	"smallserial":                 "smallint",
	"serial":                      "integer",
	"bigserial":                   "bigint",
	"float4":                      "real",
	"float8":                      "double",
	"double precision":            "double",
	"bool":                        "boolean",
	"timestamp":                   "datetime",
	"timestamptz":                 "datetime",
	"timestamp without time zone": "datetime",
	"timestamp with time zone":    "datetime",
}

// normalizeType rewrites the base name of a raw column type through the
// alias table. Arguments such as lengths and enum members are kept verbatim.
func normalizeType(d Dialect, raw string) string {
	raw = strings.TrimSpace(raw)
	t := sqlschema.ParseType(raw)

	// MySQL has no boolean storage; BOOLEAN columns are tinyint(1).
	if d == MySQL && t.Name == "tinyint" && t.Length != nil && *t.Length == 1 {
		return "boolean"
	}

	name := t.Name
	if alias, ok := typeAliases[name]; ok {
		name = alias
	}

	var args string
	if open := strings.IndexByte(raw, '('); open >= 0 {
		if end := strings.LastIndexByte(raw, ')'); end > open {
			args = raw[open : end+1]
		}
	}

	out := name + args
	if t.Unsigned {
		out += " unsigned"
	}
	return out
}
