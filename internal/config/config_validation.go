// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if !cfg.Cache.Disabled && cfg.Cache.TTL <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

// validateProcessor checks the subset of the configuration required by the
// change-event processor binary, which talks to NATS only.
func (cfg *StructuredConfig) validateProcessor() error {
	if cfg.Notifier.NATSURL == "" {
		return ErrInvalidNotifierConfigs
	}

	return nil
}
