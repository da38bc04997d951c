package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_USER_ID": "7",
		"APP_VERSION": "1.2.3",

		"IDENTITY_BASE_URL": "https://identitytoolkit.googleapis.com",
		"IDENTITY_API_KEY":  "test-api-key",

		"ORDERING_BASE_URL":        "https://cuisine.example.com/api",
		"ORDERING_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "restaurant.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, int64(7), cfg.App.UserID)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://identitytoolkit.googleapis.com", cfg.Identity.BaseURL)
	assert.Equal(t, "test-api-key", cfg.Identity.APIKey)

	assert.Equal(t, "https://cuisine.example.com/api", cfg.Ordering.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Ordering.RequestTimeout)

	assert.Equal(t, "restaurant.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"IDENTITY_API_KEY": "only-key",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only-key", cfg.Identity.APIKey)
	assert.Empty(t, cfg.Identity.BaseURL)
	assert.Zero(t, cfg.App.UserID)
	assert.Zero(t, cfg.Ordering.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ORDERING_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
