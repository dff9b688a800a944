package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// goose keeps dialect, table name and logger in package globals.
var gooseMu sync.Mutex

var dialects = map[string]string{
	"postgres": "postgres",
	"pgx":      "postgres",
	"mysql":    "mysql",
	"sqlite":   "sqlite3",
	"sqlite3":  "sqlite3",
}

// Up applies every pending goose migration in cfg.Path to db.
// The dialect uses the same names as introspection: postgres, mysql or sqlite.
func Up(ctx context.Context, db *sql.DB, dialect string, cfg Config, log *slog.Logger) error {
	if cfg.Path == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}
	gooseDialect, ok := dialects[dialect]
	if !ok {
		return errors.Join(ErrFailedToApplyMigrations, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect))
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		if os.IsNotExist(err) {
			return errors.Join(ErrMigrationsDirNotFound, err)
		}
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if log == nil {
		log = logger.Discard()
	}
	table := cfg.Table
	if table == "" {
		table = "schema_migrations"
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogAdapter{ctx: ctx, log: log.With(logger.Component("migrate"))})
	goose.SetTableName(table)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, cfg.Path); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	log.LogAttrs(ctx, slog.LevelDebug, "migrations applied",
		slog.String("path", cfg.Path),
		slog.Int64("version", version),
	)
	return nil
}

// slogAdapter routes goose's Printf-style output into structured logging.
type slogAdapter struct {
	ctx context.Context
	log *slog.Logger
}

func (a *slogAdapter) Fatalf(format string, v ...any) {
	a.log.ErrorContext(a.ctx, fmt.Sprintf(format, v...))
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.log.InfoContext(a.ctx, fmt.Sprintf(format, v...))
}
