// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Beatvault Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.RateLimit.GlobalLimit < 1 || cfg.RateLimit.AuthLimit < 1 ||
		cfg.RateLimit.GlobalWindow <= 0 || cfg.RateLimit.AuthWindow <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
