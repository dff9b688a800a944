package migrate_test

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/migrate"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestUp(t *testing.T) {
	t.Run("applies migrations", func(t *testing.T) {
		db := openMemory(t)
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())

		err := migrate.Up(context.Background(), db, "sqlite", migrate.Config{Path: "testdata/migrations"}, log)
		require.NoError(t, err)

		assert.Equal(t, []string{"orders", "schema_migrations", "users"}, tableNames(t, db))
		assert.Contains(t, buf.String(), "component=migrate")
	})

	t.Run("custom version table and idempotent rerun", func(t *testing.T) {
		db := openMemory(t)
		cfg := migrate.Config{Path: "testdata/migrations", Table: "goose_versions"}

		require.NoError(t, migrate.Up(context.Background(), db, "sqlite3", cfg, nil))
		require.NoError(t, migrate.Up(context.Background(), db, "sqlite3", cfg, nil))

		var version int64
		require.NoError(t, db.QueryRow(`SELECT MAX(version_id) FROM goose_versions`).Scan(&version))
		assert.Equal(t, int64(2), version)
	})

	t.Run("missing path", func(t *testing.T) {
		db := openMemory(t)
		err := migrate.Up(context.Background(), db, "sqlite", migrate.Config{}, nil)
		assert.ErrorIs(t, err, migrate.ErrMigrationPathNotProvided)
	})

	t.Run("missing directory", func(t *testing.T) {
		db := openMemory(t)
		err := migrate.Up(context.Background(), db, "sqlite", migrate.Config{Path: "testdata/nope"}, nil)
		assert.ErrorIs(t, err, migrate.ErrMigrationsDirNotFound)
	})

	t.Run("unsupported dialect", func(t *testing.T) {
		db := openMemory(t)
		err := migrate.Up(context.Background(), db, "oracle", migrate.Config{Path: "testdata/migrations"}, nil)
		assert.ErrorIs(t, err, migrate.ErrUnsupportedDialect)
	})
}
