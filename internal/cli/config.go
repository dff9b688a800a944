package cli

import (
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/schemakit/pkg/migrate"
	"github.com/dmitrymomot/schemakit/pkg/pg"
)

// Config is the schemacheck configuration. Every field can be set from the
// environment; the matching persistent flags win when given.
type Config struct {
	Dialect   string `env:"SCHEMACHECK_DIALECT" envDefault:"sqlite"`
	DSN       string `env:"SCHEMACHECK_DSN"`
	Schema    string `env:"SCHEMACHECK_SCHEMA"`
	LogLevel  string `env:"SCHEMACHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SCHEMACHECK_LOG_FORMAT" envDefault:"text"`

	Migrations migrate.Config
	Postgres   pg.Config
}

// applyFlags overlays explicitly set persistent flags on the loaded config.
func (c *Config) applyFlags(flags *pflag.FlagSet) {
	str := func(name string, dst *string) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	str("dialect", &c.Dialect)
	str("dsn", &c.DSN)
	str("schema", &c.Schema)
	str("log-level", &c.LogLevel)
	str("log-format", &c.LogFormat)
	str("migrations", &c.Migrations.Path)
}
