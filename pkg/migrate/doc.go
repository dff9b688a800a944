// Package migrate applies goose SQL migrations to a database/sql handle.
//
// The CLI uses it to build a throwaway schema (typically an in-memory SQLite
// database) from migration files before introspecting it, so descriptors
// can be derived without a running server.
//
//	db, _ := sql.Open("sqlite", ":memory:")
//	db.SetMaxOpenConns(1)
//	err := migrate.Up(ctx, db, "sqlite", migrate.Config{Path: "db/migrations"}, log)
//
// goose output is forwarded to the given *slog.Logger.
package migrate
