package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-identity-url identity provider base URL
//	-api-key identity provider API key
//	-ordering-url ordering API base URL (including path prefix)
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-d local SQLite database path
//	-user-id ordering API user id
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var identityBaseURL string
	var identityAPIKey string
	var orderingBaseURL string
	var requestTimeout time.Duration
	var databaseDSN string
	var userID int64
	var jsonConfigPath string

	flag.StringVar(&identityBaseURL, "identity-url", "", "Identity provider base URL")
	flag.StringVar(&identityAPIKey, "api-key", "", "Identity provider API key")
	flag.StringVar(&orderingBaseURL, "ordering-url", "", "Ordering API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.Int64Var(&userID, "user-id", 0, "Ordering API user id")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UserID: userID,
		},
		Identity: Identity{
			BaseURL: identityBaseURL,
			APIKey:  identityAPIKey,
		},
		Ordering: Ordering{
			BaseURL:        orderingBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
