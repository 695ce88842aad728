package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration is missing or invalid.
// They are fatal at startup.
var (
	// ErrInvalidStorageConfigs indicates a missing DSN or a non-positive pool size.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPasswordSalt indicates a password salt that is not 16 bytes long.
	ErrInvalidPasswordSalt = errors.New("password salt must be exactly 16 bytes")
	// ErrInvalidTokenConfigs indicates a missing sign key or issuer, or a
	// non-positive token duration.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidServerConfigs indicates an empty listen address or invalid
	// timeouts and limiter values.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
