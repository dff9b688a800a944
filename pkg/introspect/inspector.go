package introspect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
)

// Inspector reads column descriptors from a live database.
// It is safe for concurrent use when the underlying *sql.DB is.
type Inspector struct {
	db      *sql.DB
	dialect Dialect
	schema  string
	log     *slog.Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(i *Inspector) {
		if l != nil {
			i.log = l
		}
	}
}

// WithSchema overrides the schema unqualified table names resolve to.
func WithSchema(schema string) Option {
	return func(i *Inspector) {
		i.schema = schema
	}
}

// New creates an Inspector for db.
func New(db *sql.DB, d Dialect, opts ...Option) *Inspector {
	i := &Inspector{
		db:      db,
		dialect: d,
		schema:  d.DefaultSchema(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.log = i.log.With(logger.Component("introspect"), logger.Dialect(string(d)))
	return i
}

// Dialect returns the dialect the inspector was created with.
func (i *Inspector) Dialect() Dialect {
	return i.dialect
}

// rawColumn is one catalog row before normalization.
type rawColumn struct {
	name      string
	dataType  string
	nullable  bool
	maxLength sql.NullInt64
	def       sql.NullString
	udtName   string
}

// Describe reads the columns of table in ordinal order. The name may be
// qualified as "schema.table".
func (i *Inspector) Describe(ctx context.Context, table string) (sqlschema.Table, error) {
	if err := i.check(); err != nil {
		return sqlschema.Table{}, err
	}
	start := time.Now()

	schema, name, ok := splitQualified(table)
	if !ok {
		schema, name = i.schema, table
	}

	var (
		raws []rawColumn
		err  error
	)
	switch i.dialect {
	case Postgres:
		raws, err = i.postgresColumns(ctx, schema, name)
	case MySQL:
		raws, err = i.mysqlColumns(ctx, schema, name)
	case SQLite:
		raws, err = i.sqliteColumns(ctx, schema, name)
	}
	if err != nil {
		return sqlschema.Table{}, err
	}
	if len(raws) == 0 {
		return sqlschema.Table{}, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	out := sqlschema.Table{Name: name, Columns: make([]sqlschema.Column, 0, len(raws))}
	for _, rc := range raws {
		col, err := i.column(ctx, rc)
		if err != nil {
			return sqlschema.Table{}, err
		}
		out.Columns = append(out.Columns, col)
	}

	i.log.LogAttrs(ctx, slog.LevelDebug, "described table",
		logger.Table(table),
		logger.Count(len(out.Columns)),
		logger.Duration(time.Since(start)),
	)
	return out, nil
}

// Tables lists the base tables of the inspected schema in name order.
func (i *Inspector) Tables(ctx context.Context) ([]string, error) {
	if err := i.check(); err != nil {
		return nil, err
	}

	var (
		query string
		args  []any
	)
	switch i.dialect {
	case Postgres:
		query = `SELECT table_name FROM information_schema.tables
			WHERE table_schema = $1 AND table_type = 'BASE TABLE'
			ORDER BY table_name`
		args = []any{i.schema}
	case MySQL:
		if i.schema == "" {
			query = `SELECT table_name FROM information_schema.tables
				WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
				ORDER BY table_name`
		} else {
			query = `SELECT table_name FROM information_schema.tables
				WHERE table_schema = ? AND table_type = 'BASE TABLE'
				ORDER BY table_name`
			args = []any{i.schema}
		}
	case SQLite:
		query = `SELECT name FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
			ORDER BY name`
	}

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return names, nil
}

func (i *Inspector) check() error {
	if i == nil || i.db == nil {
		return ErrNilDB
	}
	if !i.dialect.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, i.dialect)
	}
	return nil
}

func (i *Inspector) column(ctx context.Context, rc rawColumn) (sqlschema.Column, error) {
	typ := normalizeType(i.dialect, rc.dataType)

	var values []string
	if i.dialect == Postgres && rc.dataType == "USER-DEFINED" {
		labels, err := i.postgresEnumLabels(ctx, rc.udtName)
		if err != nil {
			return sqlschema.Column{}, err
		}
		if len(labels) > 0 {
			typ = "enum"
			values = labels
		} else {
			typ = rc.udtName
		}
	}

	t := sqlschema.ParseType(typ)
	family := t.Family()

	col := sqlschema.Column{
		Name:         rc.name,
		Type:         typ,
		Nullable:     sqlschema.Ptr(rc.nullable),
		DefaultValue: parseDefault(i.dialect, nullString(rc.def), family),
		Values:       values,
	}
	if family == sqlschema.FamilyString && t.Name != "enum" && t.Length == nil && rc.maxLength.Valid && rc.maxLength.Int64 > 0 {
		col.MaxLength = sqlschema.Ptr(int(rc.maxLength.Int64))
	}

	i.log.LogAttrs(ctx, slog.LevelDebug, "read column",
		logger.Column(rc.name),
		slog.String("raw_type", rc.dataType),
		slog.String("type", typ),
		slog.String("family", family.String()),
	)
	return col, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
