// Package schemakit turns SQL column descriptors into data validators.
//
// The module is organised in layers:
//
//   - pkg/validator is the rule engine: immutable rule values, a message
//     catalog with %{name} templates, Compile and Validate.
//   - pkg/sqlschema maps column descriptors (type, nullability, length,
//     default, enum members) onto validator rules and loads descriptors
//     from YAML or JSON files.
//   - pkg/introspect reads descriptors from PostgreSQL, MySQL and SQLite
//     catalogs.
//   - cmd/schemacheck exposes describe and check commands.
//
// Basic usage:
//
//	v, err := sqlschema.Compile(sqlschema.Schema{
//		"id":    {Type: "int(11) unsigned", Nullable: sqlschema.Ptr(false)},
//		"email": {Type: "varchar(255)", Nullable: sqlschema.Ptr(false)},
//		"role":  {Type: "enum('admin','member')", DefaultValue: "member"},
//	})
//	if err != nil {
//		return err
//	}
//
//	res := v.Validate(map[string]any{"id": 7, "email": " a@b.c "})
//	if err := schemakit.FromResult(res); err != nil {
//		var verr schemakit.ValidationError
//		errors.As(err, &verr)
//		fmt.Println(verr.Get("email"))
//	}
//
// This package holds ValidationError, a url.Values based view of a failed
// validation keyed by field name.
package schemakit
