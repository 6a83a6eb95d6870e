package config

import "errors"

// Validation errors returned when required configuration is missing or
// inconsistent.
var (
	ErrMissingTokenSignKey   = errors.New("token sign key is required")
	ErrMissingDatabaseURI    = errors.New("database connection string is required")
	ErrMissingDatabaseName   = errors.New("database name is required for mongodb")
	ErrUnknownDBDriver       = errors.New("unknown database driver")
	ErrInvalidLimiterConfigs = errors.New("invalid limiter configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
