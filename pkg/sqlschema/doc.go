// Package sqlschema derives validators from SQL column definitions.
//
// Each column descriptor is mapped to a rule by its type family:
//
//	integer  tinyint smallint mediumint int integer bigint  integer in [-floor((max+1)/2), max]
//	float    float double real numeric decimal              number
//	boolean  boolean bit                                    boolean
//	string   char varchar text tinytext enum                trimmed string, max length when known
//	date     datetime date                                  ISO 8601 date
//	any      everything else                                any value
//
// where max is the unsigned maximum of the integer type (smallint accepts
// -32768 to 65535). Unsigned columns start at zero. Enum members, taken from
// Column.Values or from the type definition, restrict the string to those values.
//
// A column declared NOT NULL (Nullable set to false) becomes required and
// rejects null; any other column accepts null. A non-null default value is
// substituted for absent fields unless IgnoreDefaults is given.
//
// # Usage
//
//	v, err := sqlschema.Compile(sqlschema.Schema{
//	    "age":  {Type: "smallint", Nullable: sqlschema.Ptr(false)},
//	    "name": {Type: "varchar", MaxLength: sqlschema.Ptr(5), Nullable: sqlschema.Ptr(false)},
//	    "born": {Type: "datetime", Nullable: sqlschema.Ptr(true)},
//	})
//	if err != nil {
//	    return err
//	}
//	res := v.Validate(map[string]any{"age": 12, "name": " bob "})
//
// Descriptors can also be kept in YAML or JSON files (LoadFile) or read from a
// live database with the introspect package; both produce a Table whose
// column order is kept by CompileTable.
//
// The compiled validator collects every violation, coerces values, strips
// unknown fields and deduplicates messages; see the validator package.
package sqlschema
