package migrate

// Config selects the migration files and the goose version table.
type Config struct {
	Path  string `env:"SCHEMACHECK_MIGRATIONS_PATH"`                                // Path is the directory holding goose SQL migrations.
	Table string `env:"SCHEMACHECK_MIGRATIONS_TABLE" envDefault:"schema_migrations"` // Table stores the applied migration version.
}
