package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/schemakit"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/sqlschema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

type checkFlags struct {
	file           string
	table          string
	input          string
	messages       string
	ignoreDefaults bool
}

// report is one output line of check.
type report struct {
	Index  int                       `json:"index"`
	Valid  bool                      `json:"valid"`
	Value  any                       `json:"value,omitempty"`
	Errors schemakit.ValidationError `json:"errors,omitempty"`
}

func newCheckCmd() *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate JSON documents against table descriptors",
		Long: `Validate JSON documents against the rules derived from a descriptor file or a
table. The input holds JSON objects, arrays of objects, or one object per line.

One JSON report is printed per document: the coerced value when it is valid,
the messages grouped by field otherwise. The command fails when any document
is invalid.`,
		Example: `  # Validate a file against a descriptor
  schemacheck check --file users.yaml --input users.json

  # Validate stdin against a live table
  cat rows.ndjson | schemacheck check --table users --dsn app.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "descriptor file (.yaml, .yml or .json)")
	flags.StringVarP(&f.table, "table", "t", "", "table to introspect")
	flags.StringVarP(&f.input, "input", "i", "-", "JSON input file, - for stdin")
	flags.StringVar(&f.messages, "messages", "", "YAML file with message templates overriding the catalog")
	flags.BoolVar(&f.ignoreDefaults, "ignore-defaults", false, "do not fill column defaults into missing values")
	cmd.MarkFlagsMutuallyExclusive("file", "table")
	cmd.MarkFlagsOneRequired("file", "table")
	return cmd
}

func runCheck(cmd *cobra.Command, f checkFlags) error {
	st := stateFrom(cmd)
	ctx := cmd.Context()
	start := time.Now()

	table, err := loadTable(cmd, st, f)
	if err != nil {
		return err
	}

	opts := []sqlschema.Option{sqlschema.WithLogger(st.log)}
	if f.ignoreDefaults {
		opts = append(opts, sqlschema.IgnoreDefaults())
	}
	if f.messages != "" {
		m, err := loadMessages(f.messages)
		if err != nil {
			return err
		}
		opts = append(opts, sqlschema.WithMessages(m))
	}

	v, err := sqlschema.CompileTable(table, opts...)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, f.input)
	if err != nil {
		return err
	}
	defer closeInput()

	docs, err := decodeDocuments(in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	invalid := 0
	for i, doc := range docs {
		res := v.Validate(doc)
		r := report{Index: i, Valid: res.Valid()}
		if r.Valid {
			r.Value = res.Value
		} else {
			invalid++
			r.Errors = schemakit.FromErrors(res.Errors)
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	st.log.LogAttrs(ctx, slog.LevelInfo, "check finished",
		logger.Table(table.Name),
		logger.Count(len(docs)),
		slog.Int("invalid", invalid),
		logger.Duration(time.Since(start)),
	)

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrValidationFailed, invalid, len(docs))
	}
	return nil
}

func loadTable(cmd *cobra.Command, st *state, f checkFlags) (sqlschema.Table, error) {
	if f.file != "" {
		return sqlschema.LoadFile(f.file)
	}

	db, err := openDatabase(cmd.Context(), st.cfg, st.log)
	if err != nil {
		return sqlschema.Table{}, err
	}
	defer db.Close()
	return db.inspector.Describe(cmd.Context(), f.table)
}

func loadMessages(path string) (validator.Messages, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	var m validator.Messages
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse messages %s: %w", path, err)
	}
	return m, nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// decodeDocuments reads a stream of JSON values. Top-level arrays are
// flattened into their elements.
func decodeDocuments(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
		if arr, ok := v.([]any); ok {
			docs = append(docs, arr...)
			continue
		}
		docs = append(docs, v)
	}
	return docs, nil
}
