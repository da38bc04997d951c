package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; client-facing rules live on [ClientConfig]
// because only the client view is consumed at runtime.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Identity.BaseURL == "" || cfg.Identity.APIKey == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Ordering.BaseURL == "" || cfg.Ordering.RequestTimeout == 0 {
		return ErrInvalidOrderingConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.UserID <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
