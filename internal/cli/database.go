package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/dmitrymomot/schemakit/pkg/introspect"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/migrate"
	"github.com/dmitrymomot/schemakit/pkg/pg"
)

// ErrNoDatabase is returned when a command needs a database and neither a
// DSN nor a migrations directory was configured.
var ErrNoDatabase = errors.New("no database configured: set --dsn or --migrations")

// database is an open handle plus the inspector bound to it.
type database struct {
	db        *sql.DB
	inspector *introspect.Inspector
	closers   []func()
}

func (d *database) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// openDatabase connects to the configured database. Without a DSN, a
// migrations directory is applied to a private in-memory SQLite database.
func openDatabase(ctx context.Context, cfg Config, log *slog.Logger) (*database, error) {
	dialect, err := introspect.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	d := &database{}
	switch {
	case cfg.DSN == "" && cfg.Migrations.Path != "":
		dialect = introspect.SQLite
		if err := d.openSQL(ctx, dialect, ":memory:"); err != nil {
			return nil, err
		}
	case cfg.DSN == "":
		return nil, ErrNoDatabase
	case dialect == introspect.Postgres:
		pgCfg := cfg.Postgres
		pgCfg.ConnectionString = cfg.DSN
		pool, err := pg.Connect(ctx, pgCfg, log)
		if err != nil {
			return nil, err
		}
		d.db = pg.OpenDB(pool)
		d.closers = append(d.closers, pool.Close, func() { _ = d.db.Close() })
	default:
		if err := d.openSQL(ctx, dialect, cfg.DSN); err != nil {
			return nil, err
		}
	}

	if cfg.Migrations.Path != "" {
		if err := migrate.Up(ctx, d.db, string(dialect), cfg.Migrations, log); err != nil {
			d.Close()
			return nil, err
		}
	}

	opts := []introspect.Option{introspect.WithLogger(log)}
	if cfg.Schema != "" {
		opts = append(opts, introspect.WithSchema(cfg.Schema))
	}
	d.inspector = introspect.New(d.db, dialect, opts...)

	log.LogAttrs(ctx, slog.LevelDebug, "database ready",
		logger.Dialect(string(dialect)),
		slog.Bool("migrated", cfg.Migrations.Path != ""),
	)
	return d, nil
}

func (d *database) openSQL(ctx context.Context, dialect introspect.Dialect, dsn string) error {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return fmt.Errorf("open %s database: %w", dialect, err)
	}
	if dialect == introspect.SQLite {
		// in-memory databases live per connection
		db.SetMaxOpenConns(1)
	}
	if err := pg.Healthcheck(pg.PingerFunc(db.PingContext))(ctx); err != nil {
		_ = db.Close()
		return err
	}
	d.db = db
	d.closers = append(d.closers, func() { _ = db.Close() })
	return nil
}

// isMigrationsTable reports whether a table is the goose version table.
func isMigrationsTable(cfg Config, name string) bool {
	table := cfg.Migrations.Table
	if table == "" {
		table = "schema_migrations"
	}
	return name == table
}
