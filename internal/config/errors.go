package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates invalid cache settings
	// (for example, a non-positive TTL while the cache is enabled).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidNotifierConfigs indicates invalid notifier settings
	// (for example, a missing NATS URL for the processor binary).
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)
