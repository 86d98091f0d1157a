package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates invalid database settings (for
	// example, a server url without a server database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidImportConfigs indicates an incomplete import description.
	ErrInvalidImportConfigs = errors.New("invalid import configuration")
)
