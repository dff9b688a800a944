// Package cli implements the schemacheck command line.
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// ErrValidationFailed is returned by check when at least one document is invalid.
var ErrValidationFailed = errors.New("one or more documents failed validation")

type runIDKey struct{}

type stateKey struct{}

// state is shared with subcommands through the command context.
type state struct {
	cfg Config
	log *slog.Logger
}

func stateFrom(cmd *cobra.Command) *state {
	if s, ok := cmd.Context().Value(stateKey{}).(*state); ok {
		return s
	}
	return &state{log: logger.Discard()}
}

// NewRootCmd creates the schemacheck root command.
func NewRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "schemacheck",
		Short: "Derive validators from SQL column descriptors",
		Long: `schemacheck reads column descriptors from a YAML/JSON file, a live database
or a directory of goose migrations, and validates JSON documents against the
rules derived from them.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}

			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			cfg.applyFlags(cmd.Flags())

			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
			ctx = context.WithValue(ctx, stateKey{}, &state{cfg: cfg, log: log})
			cmd.SetContext(ctx)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&envFiles, "env-file", nil, "load variables from .env files before reading the environment")
	flags.String("dialect", "", "database dialect: postgres, mysql or sqlite (env SCHEMACHECK_DIALECT)")
	flags.String("dsn", "", "database connection string (env SCHEMACHECK_DSN)")
	flags.String("schema", "", "schema unqualified table names resolve to (env SCHEMACHECK_SCHEMA)")
	flags.String("migrations", "", "goose migrations directory applied before introspection (env SCHEMACHECK_MIGRATIONS_PATH)")
	flags.String("log-level", "", "debug, info, warn or error (env SCHEMACHECK_LOG_LEVEL)")
	flags.String("log-format", "", "text or json (env SCHEMACHECK_LOG_FORMAT)")

	_ = root.RegisterFlagCompletionFunc("dialect", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"postgres", "mysql", "sqlite"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newDescribeCmd())
	root.AddCommand(newCheckCmd())
	return root
}

func newLogger(cmd *cobra.Command, cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, errors.New("unsupported log format: " + cfg.LogFormat)
	}
	return logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService("schemacheck"),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}
