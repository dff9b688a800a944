// Package pg opens PostgreSQL connections for schema introspection.
//
// It wraps pgx/v5: Connect builds a *pgxpool.Pool from an env-tagged Config
// and retries until the server answers a ping, OpenDB bridges the pool into
// a *sql.DB for code written against database/sql, and Healthcheck returns a
// probe suitable for readiness checks.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	ins := introspect.New(pg.OpenDB(pool), introspect.Postgres)
//	table, err := ins.Describe(ctx, "users")
//
// # Configuration
//
// Pool limits and retry cadence come from PG_* environment variables; see
// the field tags on Config for names and defaults.
package pg
