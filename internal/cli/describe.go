package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
)

func newDescribeCmd() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "describe [table...]",
		Short: "Print column descriptors of tables or a descriptor file",
		Long: `Print column descriptors in the descriptor file format.

Tables are read from the database given by --dsn, or from an in-memory SQLite
database built from --migrations. Without table arguments every table is
described. With --file the descriptor file is parsed and printed normalized.`,
		Example: `  # Describe every table defined by a migrations directory
  schemacheck describe --migrations db/migrations

  # Describe one PostgreSQL table as JSON
  schemacheck describe users --dialect postgres --dsn "$DATABASE_URL" -o json

  # Normalize a descriptor file
  schemacheck describe --file users.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args, file, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "descriptor file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func runDescribe(cmd *cobra.Command, args []string, file, output string) error {
	if output != "yaml" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}
	st := stateFrom(cmd)
	ctx := cmd.Context()

	var tables []sqlschema.Table
	switch {
	case file != "" && len(args) > 0:
		return errors.New("table arguments cannot be combined with --file")
	case file != "":
		t, err := sqlschema.LoadFile(file)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	default:
		db, err := openDatabase(ctx, st.cfg, st.log)
		if err != nil {
			return err
		}
		defer db.Close()

		names := args
		if len(names) == 0 {
			all, err := db.inspector.Tables(ctx)
			if err != nil {
				return err
			}
			for _, n := range all {
				if !isMigrationsTable(st.cfg, n) {
					names = append(names, n)
				}
			}
		}
		for _, n := range names {
			t, err := db.inspector.Describe(ctx, n)
			if err != nil {
				return err
			}
			tables = append(tables, t)
		}
	}

	st.log.DebugContext(ctx, "describing tables", logger.Count(len(tables)))
	return writeTables(cmd.OutOrStdout(), tables, output)
}

func writeTables(w io.Writer, tables []sqlschema.Table, output string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(tables) == 1 {
			return enc.Encode(tables[0])
		}
		return enc.Encode(tables)
	}

	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		out, err := sqlschema.Marshal(t)
		if err != nil {
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}
