// Package introspect reads column descriptors from a live database.
//
// An Inspector queries the catalog of PostgreSQL or MySQL
// (information_schema.columns) or SQLite (pragma_table_info) and returns a
// sqlschema.Table that compiles into a validator exactly like a hand-written
// descriptor:
//
//	ins := introspect.New(db, introspect.Postgres, introspect.WithLogger(log))
//	table, err := ins.Describe(ctx, "public.users")
//	if err != nil {
//	    return err
//	}
//	v, err := sqlschema.CompileTable(table)
//
// Dialect spellings are normalized onto the type names sqlschema dispatches
// on: "character varying" becomes varchar, "timestamp with time zone"
// becomes datetime, MySQL tinyint(1) becomes boolean. PostgreSQL enum types
// are expanded into their labels.
//
// Column defaults are kept only when they are literals. String literals are
// unquoted, numeric and boolean literals are converted to int64, float64 or
// bool by column family, and expressions such as now() or nextval(...) are
// dropped.
package introspect
