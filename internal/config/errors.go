package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidIdentityConfigs indicates invalid identity provider settings
	// (for example, a missing API key or base URL).
	ErrInvalidIdentityConfigs = errors.New("invalid identity provider configuration")
	// ErrInvalidOrderingConfigs indicates invalid ordering API settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidOrderingConfigs = errors.New("invalid ordering API configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive user id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
