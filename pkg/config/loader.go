package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed copy per configuration type, keyed by type name.
type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	loaded = &cache{values: make(map[string]any)}

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v using its `env` struct tags.
//
// The first call loads the .env file of the working directory when present.
// Each configuration type is parsed once; later calls for the same type get
// the cached copy, even when the environment changed in between.
//
//	type Config struct {
//	    Dialect string `env:"SCHEMACHECK_DIALECT" envDefault:"postgres"`
//	    DSN     string `env:"SCHEMACHECK_DSN"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if cached, ok := loaded.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached copy of T and parses the environment again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loaded.mu.Lock()
	delete(loaded.values, typeName[T]())
	loaded.mu.Unlock()

	return Load(v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	loaded.mu.Lock()
	defer loaded.mu.Unlock()
	clear(loaded.values)
}

// LoadEnv loads variables from the given .env files, or from ./.env when no
// path is given. Later files win over earlier ones; variables already set in
// the process environment are never overwritten.
func LoadEnv(paths ...string) error {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	for k, val := range vars {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
