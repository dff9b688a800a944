// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` and `envDefault` tags.
//
// # Usage
//
//	type Config struct {
//	    Dialect   string `env:"SCHEMACHECK_DIALECT" envDefault:"postgres"`
//	    DSN       string `env:"SCHEMACHECK_DSN"`
//	    LogLevel  string `env:"SCHEMACHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load parses each configuration type once and serves later calls from an
// in-memory cache. ResetCache and ForceReloadConfig exist for tests and for
// programs that change their environment at runtime.
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
