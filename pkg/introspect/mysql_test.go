package introspect_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/introspect"
	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
)

var mysqlColumns = []string{
	"column_name", "column_type", "is_nullable", "character_maximum_length", "column_default",
}

func TestDescribe_MySQL(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`table_schema = DATABASE\(\)`).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows(mysqlColumns).
			AddRow("id", "int(11) unsigned", "NO", nil, nil).
			AddRow("status", "enum('new','paid','it''s shipped')", "YES", int64(12), "new").
			AddRow("note", "varchar(64)", "YES", int64(64), "n/a").
			AddRow("body", "mediumtext", "YES", int64(16777215), nil).
			AddRow("total", "decimal(10,2)", "NO", nil, "0.00").
			AddRow("paid", "tinyint(1)", "NO", nil, "0").
			AddRow("flags", "tinyint(4)", "YES", nil, "3").
			AddRow("created_at", "datetime", "YES", nil, "CURRENT_TIMESTAMP").
			AddRow("updated_at", "timestamp", "YES", nil, "current_timestamp()"))

	table, err := introspect.New(db, introspect.MySQL).Describe(context.Background(), "orders")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	tests := []struct {
		name      string
		typ       string
		required  bool
		maxLength *int
		def       any
	}{
		{"id", "int(11) unsigned", true, nil, nil},
		{"status", "enum('new','paid','it''s shipped')", false, nil, "new"},
		{"note", "varchar(64)", false, nil, "n/a"},
		{"body", "text", false, sqlschema.Ptr(16777215), nil},
		{"total", "decimal(10,2)", true, nil, 0.0},
		{"paid", "boolean", true, nil, false},
		{"flags", "tinyint(4)", false, nil, int64(3)},
		{"created_at", "datetime", false, nil, nil},
		{"updated_at", "datetime", false, nil, nil},
	}
	require.Len(t, table.Columns, len(tests))
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := table.Columns[i]
			assert.Equal(t, tt.name, col.Name)
			assert.Equal(t, tt.typ, col.Type)
			assert.Equal(t, tt.required, col.Required())
			assert.Equal(t, tt.maxLength, col.MaxLength)
			assert.Equal(t, tt.def, col.DefaultValue)
		})
	}

	status, _ := table.Column("status")
	assert.Equal(t, []string{"new", "paid", "it's shipped"}, sqlschema.ParseType(status.Type).Values)

	v, err := sqlschema.CompileTable(table)
	require.NoError(t, err)

	res := v.Validate(map[string]any{"id": 1, "total": 10.5, "paid": true})
	require.True(t, res.Valid(), res.Errors.Messages())
	value := res.Value.(map[string]any)
	assert.Equal(t, "new", value["status"])
	assert.Equal(t, "n/a", value["note"])

	res = v.Validate(map[string]any{"id": -1, "total": 1, "paid": false})
	assert.False(t, res.Valid(), "unsigned column rejects negatives")

	res = v.Validate(map[string]any{"id": 1, "total": 1, "paid": false, "status": "lost"})
	assert.False(t, res.Valid(), "enum members are enforced")
}

func TestDescribe_MySQLSchema(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`table_schema = \? AND table_name = \?`).
		WithArgs("shop", "items").
		WillReturnRows(sqlmock.NewRows(mysqlColumns).AddRow("sku", "char(8)", "NO", int64(8), nil))

	table, err := introspect.New(db, introspect.MySQL).Describe(context.Background(), "shop.items")
	require.NoError(t, err)
	assert.Equal(t, "items", table.Name)
	assert.Equal(t, "char(8)", table.Columns[0].Type)
	assert.Nil(t, table.Columns[0].MaxLength, "length already carried by the type")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTables_MySQL(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM information_schema.tables\s+WHERE table_schema = DATABASE\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("items"))

	names, err := introspect.New(db, introspect.MySQL).Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"items"}, names)
}
