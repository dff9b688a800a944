package introspect

import (
	"fmt"
	"strings"
)

// Dialect names the database flavour an Inspector talks to.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

// ParseDialect accepts the dialect names and their common driver aliases.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql", "pgx", "pg":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
	}
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	default:
		return ""
	}
}

// DefaultSchema is the schema unqualified table names resolve to.
// For MySQL it is empty and the connection's current database is used.
func (d Dialect) DefaultSchema() string {
	switch d {
	case Postgres:
		return "public"
	case SQLite:
		return "main"
	default:
		return ""
	}
}

func (d Dialect) valid() bool {
	return d == Postgres || d == MySQL || d == SQLite
}

// splitQualified splits "schema.table". ok is false for a bare name.
func splitQualified(table string) (schema, name string, ok bool) {
	return strings.Cut(table, ".")
}
