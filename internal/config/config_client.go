package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// UserID is the ordering-API user identifier the client acts for.
	UserID int64
	// Version is the application version string.
	Version string
}

// ClientIdentity holds identity provider settings used by the auth adapter.
type ClientIdentity struct {
	// BaseURL is the identity provider endpoint base.
	BaseURL string
	// APIKey is the provider project API key.
	APIKey string
}

// ClientOrdering holds network settings used by the ordering adapter.
type ClientOrdering struct {
	// BaseURL is the ordering API base URL including the path prefix.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Identity contains identity provider settings.
	Identity ClientIdentity
	// Ordering contains ordering API addresses and timeouts.
	Ordering ClientOrdering
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:  cfg.App.UserID,
			Version: cfg.App.Version,
		},
		Identity: ClientIdentity{
			BaseURL: cfg.Identity.BaseURL,
			APIKey:  cfg.Identity.APIKey,
		},
		Ordering: ClientOrdering{
			BaseURL:        cfg.Ordering.BaseURL,
			RequestTimeout: cfg.Ordering.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
