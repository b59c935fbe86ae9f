package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, neither a DSN nor a redis address, or a non-positive
	// timeout).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an empty log file path or an unknown
	// log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidFlags is returned when the command line cannot be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
