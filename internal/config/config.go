package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// restaurant client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the ordering-API user id
	// and the application version.
	App App `envPrefix:"APP_"`

	// Identity holds the third-party identity provider settings.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Ordering holds the restaurant ordering API settings.
	Ordering Ordering `envPrefix:"ORDERING_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the ordering-API user identifier the client acts for.
	// The ordering API keys the current order by this integer id, which is
	// assigned out of band; it is not the identity-provider localId.
	// Env: APP_USER_ID
	UserID int64 `env:"USER_ID"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Identity holds settings for the third-party identity provider
// (Google Identity Toolkit wire format).
type Identity struct {
	// BaseURL is the identity provider endpoint base
	// (e.g. "https://identitytoolkit.googleapis.com").
	// Env: IDENTITY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the provider project API key appended to every auth call.
	// Env: IDENTITY_API_KEY
	APIKey string `env:"API_KEY"`
}

// Ordering holds settings for the restaurant ordering REST API.
type Ordering struct {
	// BaseURL is the ordering API base, including the path prefix
	// (e.g. "https://cuisine-qemt.onrender.com/api").
	// Env: ORDERING_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s"). No retries are performed on timeout.
	// Env: ORDERING_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that stores the
// session token.
type DB struct {
	// DSN is the SQLite file path used by the client
	// (e.g. "restaurant.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
