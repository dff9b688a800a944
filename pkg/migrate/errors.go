package migrate

import "errors"

var (
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrMigrationsDirNotFound    = errors.New("migrations directory not found")
	ErrMigrationPathNotProvided = errors.New("migration path not provided")
	ErrUnsupportedDialect       = errors.New("unsupported migration dialect")
)
