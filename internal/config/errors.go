package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// missing database path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates a non-positive auto-lock timeout or
	// an iteration count below the minimum.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidSyncConfigs indicates invalid mirror settings.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidMirrorConfigs indicates a missing listen address, mirror
	// directory or body limit.
	ErrInvalidMirrorConfigs = errors.New("invalid mirror configuration")
)
