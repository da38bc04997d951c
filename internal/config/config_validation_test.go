package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{UserID: 1},
		Identity: ClientIdentity{
			BaseURL: "https://identitytoolkit.googleapis.com",
			APIKey:  "key",
		},
		Ordering: ClientOrdering{
			BaseURL:        "https://cuisine.example.com/api",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "restaurant.db"}},
	}
}

func TestClientConfigValidate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_MissingAPIKey(t *testing.T) {
	cfg := validClientConfig()
	cfg.Identity.APIKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidIdentityConfigs)
}

func TestClientConfigValidate_MissingOrderingURL(t *testing.T) {
	cfg := validClientConfig()
	cfg.Ordering.BaseURL = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidOrderingConfigs)
}

func TestClientConfigValidate_ZeroTimeout(t *testing.T) {
	cfg := validClientConfig()
	cfg.Ordering.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidOrderingConfigs)
}

func TestClientConfigValidate_InMemoryDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_BadUserID(t *testing.T) {
	cfg := validClientConfig()
	cfg.App.UserID = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
