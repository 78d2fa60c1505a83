// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const (
	defaultHTTPAddress         = ":8080"
	defaultTokenIssuer         = "go-task-keeper"
	defaultTokenDuration       = 24 * time.Hour
	defaultCacheTTL            = 300 * time.Second
	defaultCacheConnectTimeout = 5 * time.Second
)

// applyDefaults fills in the documented defaults for every field the merged
// sources left at its zero value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}
	if cfg.Storage.Cache.ConnectTimeout == 0 {
		cfg.Storage.Cache.ConnectTimeout = defaultCacheConnectTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
