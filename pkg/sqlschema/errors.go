package sqlschema

import "errors"

var (
	// ErrMissingType is returned when a column descriptor has no type.
	ErrMissingType = errors.New("column type is required")

	// ErrMissingName is returned when a column of an ordered table has no name.
	ErrMissingName = errors.New("column name is required")

	ErrFailedToReadFile        = errors.New("failed to read descriptor file")
	ErrFailedToParseDescriptor = errors.New("failed to parse column descriptors")
	ErrUnsupportedFormat       = errors.New("unsupported descriptor format")
)
