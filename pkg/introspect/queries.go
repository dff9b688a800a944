package introspect

import (
	"context"
	"errors"
	"strings"
)

const postgresColumnsQuery = `SELECT column_name, data_type, udt_name, is_nullable,
		character_maximum_length, column_default
	FROM information_schema.columns
	WHERE table_schema = $1 AND table_name = $2
	ORDER BY ordinal_position`

const postgresEnumQuery = `SELECT e.enumlabel
	FROM pg_type t
	JOIN pg_enum e ON e.enumtypid = t.oid
	WHERE t.typname = $1
	ORDER BY e.enumsortorder`

const mysqlColumnsQuery = `SELECT column_name, column_type, is_nullable,
		character_maximum_length, column_default
	FROM information_schema.columns
	WHERE table_schema = DATABASE() AND table_name = ?
	ORDER BY ordinal_position`

const mysqlSchemaColumnsQuery = `SELECT column_name, column_type, is_nullable,
		character_maximum_length, column_default
	FROM information_schema.columns
	WHERE table_schema = ? AND table_name = ?
	ORDER BY ordinal_position`

const sqliteColumnsQuery = `SELECT name, type, "notnull", dflt_value
	FROM pragma_table_info(?, ?)
	ORDER BY cid`

func (i *Inspector) postgresColumns(ctx context.Context, schema, table string) ([]rawColumn, error) {
	rows, err := i.db.QueryContext(ctx, postgresColumnsQuery, schema, table)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []rawColumn
	for rows.Next() {
		var (
			rc       rawColumn
			nullable string
		)
		if err := rows.Scan(&rc.name, &rc.dataType, &rc.udtName, &nullable, &rc.maxLength, &rc.def); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		rc.nullable = strings.EqualFold(nullable, "YES")
		cols = append(cols, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return cols, nil
}

func (i *Inspector) postgresEnumLabels(ctx context.Context, typeName string) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, postgresEnumQuery, typeName)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return labels, nil
}

func (i *Inspector) mysqlColumns(ctx context.Context, schema, table string) ([]rawColumn, error) {
	query, args := mysqlColumnsQuery, []any{table}
	if schema != "" {
		query, args = mysqlSchemaColumnsQuery, []any{schema, table}
	}

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []rawColumn
	for rows.Next() {
		var (
			rc       rawColumn
			nullable string
		)
		if err := rows.Scan(&rc.name, &rc.dataType, &nullable, &rc.maxLength, &rc.def); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		rc.nullable = strings.EqualFold(nullable, "YES")
		cols = append(cols, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return cols, nil
}

func (i *Inspector) sqliteColumns(ctx context.Context, schema, table string) ([]rawColumn, error) {
	rows, err := i.db.QueryContext(ctx, sqliteColumnsQuery, table, schema)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []rawColumn
	for rows.Next() {
		var (
			rc      rawColumn
			notNull int
		)
		if err := rows.Scan(&rc.name, &rc.dataType, &notNull, &rc.def); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		rc.nullable = notNull == 0
		cols = append(cols, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return cols, nil
}
