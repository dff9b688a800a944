package pg

import (
	"context"
	"errors"
)

// pinger is satisfied by *pgxpool.Pool and *sql.DB.
type pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts *sql.DB, whose ping method is PingContext.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Healthcheck returns a probe that pings the database.
func Healthcheck(conn pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := conn.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
