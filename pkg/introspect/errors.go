package introspect

import "errors"

var (
	ErrNilDB              = errors.New("introspect: database handle is nil")
	ErrUnsupportedDialect = errors.New("introspect: unsupported dialect")
	ErrTableNotFound      = errors.New("introspect: table not found")
	ErrQueryFailed        = errors.New("introspect: metadata query failed")
)
