package sqlschema_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("yaml columns list", func(t *testing.T) {
		table, err := sqlschema.LoadFile(filepath.Join("testdata", "users.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "users", table.Name)
		require.Len(t, table.Columns, 5)
		assert.Equal(t, "a", table.Columns[0].Name)
		assert.True(t, table.Columns[0].Required())

		b := table.Columns[1]
		require.NotNil(t, b.MaxLength)
		assert.Equal(t, 5, *b.MaxLength)

		e := table.Columns[2]
		assert.Equal(t, "0", e.DefaultValue)
		assert.False(t, e.Required())
	})

	t.Run("json and yaml produce identical tables", func(t *testing.T) {
		fromYAML, err := sqlschema.LoadFile(filepath.Join("testdata", "users.yaml"))
		require.NoError(t, err)
		fromJSON, err := sqlschema.LoadFile(filepath.Join("testdata", "users.json"))
		require.NoError(t, err)

		assert.Equal(t, fromYAML, fromJSON)
	})

	t.Run("loaded table compiles like the literal schema", func(t *testing.T) {
		table, err := sqlschema.LoadFile(filepath.Join("testdata", "users.yaml"))
		require.NoError(t, err)

		v, err := sqlschema.CompileTable(table)
		require.NoError(t, err)

		res := v.Validate(map[string]any{})
		assert.Equal(t, []string{"a is required.", "b is required."}, res.Errors.Messages())

		res = v.Validate(map[string]any{"a": 123, "b": "abc", "g": 123.22222})
		require.True(t, res.Valid())
	})

	t.Run("mapping form keeps document order", func(t *testing.T) {
		table, err := sqlschema.LoadFile(filepath.Join("testdata", "orders.yml"))
		require.NoError(t, err)

		assert.Equal(t, "orders", table.Name, "file name is the default table name")
		require.Len(t, table.Columns, 3)
		assert.Equal(t, "status", table.Columns[0].Name)
		assert.Equal(t, "id", table.Columns[1].Name)
		assert.Equal(t, "total", table.Columns[2].Name)
		assert.Equal(t, "new", table.Columns[0].DefaultValue)

		v, err := sqlschema.CompileTable(table)
		require.NoError(t, err)

		res := v.Validate(map[string]any{"id": 1})
		require.True(t, res.Valid())
		assert.Equal(t, "new", res.Value.(map[string]any)["status"])

		res = v.Validate(map[string]any{"id": -1, "status": "lost"})
		assert.Equal(t, []string{
			"status must be one of [new, paid, shipped].",
			"id must be larger than or equal to 0",
		}, res.Errors.Messages())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := sqlschema.LoadFile(filepath.Join("testdata", "users.csv"))
		assert.ErrorIs(t, err, sqlschema.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := sqlschema.LoadFile(filepath.Join("testdata", "missing.yaml"))
		assert.ErrorIs(t, err, sqlschema.ErrFailedToReadFile)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := sqlschema.LoadFile(filepath.Join("testdata", "broken.yaml"))
		assert.ErrorIs(t, err, sqlschema.ErrFailedToParseDescriptor)
	})

	t.Run("top level list", func(t *testing.T) {
		_, err := sqlschema.LoadFile(filepath.Join("testdata", "list.yaml"))
		assert.ErrorIs(t, err, sqlschema.ErrFailedToParseDescriptor)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("json mapping form", func(t *testing.T) {
		table, err := sqlschema.Parse([]byte(`{"id": {"type": "int", "nullable": false}, "name": {"type": "varchar(20)"}}`), sqlschema.FormatJSON)
		require.NoError(t, err)
		require.Len(t, table.Columns, 2)
		assert.Equal(t, "id", table.Columns[0].Name)
		assert.Equal(t, "varchar(20)", table.Columns[1].Type)
		assert.Nil(t, table.Columns[1].Nullable)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := sqlschema.Parse(nil, sqlschema.FormatYAML)
		assert.ErrorIs(t, err, sqlschema.ErrFailedToParseDescriptor)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := sqlschema.Parse([]byte("a: {type: int}"), sqlschema.Format("toml"))
		assert.ErrorIs(t, err, sqlschema.ErrUnsupportedFormat)
	})

	t.Run("invalid column", func(t *testing.T) {
		_, err := sqlschema.Parse([]byte("a: [1, 2]"), sqlschema.FormatYAML)
		assert.ErrorIs(t, err, sqlschema.ErrFailedToParseDescriptor)
	})

	t.Run("marshal output parses back", func(t *testing.T) {
		table := sqlschema.Table{
			Name: "users",
			Columns: []sqlschema.Column{
				{Name: "id", Type: "int", Nullable: sqlschema.Ptr(false)},
				{Name: "name", Type: "varchar", MaxLength: sqlschema.Ptr(20), DefaultValue: "anon"},
			},
		}
		data, err := sqlschema.Marshal(table)
		require.NoError(t, err)

		parsed, err := sqlschema.Parse(data, sqlschema.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, table, parsed)
	})
}

func TestFormatOf(t *testing.T) {
	tests := map[string]sqlschema.Format{
		"a.yaml":  sqlschema.FormatYAML,
		"a.YML":   sqlschema.FormatYAML,
		"a.json":  sqlschema.FormatJSON,
		"dir/b.j": "",
	}
	for path, want := range tests {
		got, err := sqlschema.FormatOf(path)
		if want == "" {
			assert.ErrorIs(t, err, sqlschema.ErrUnsupportedFormat)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
