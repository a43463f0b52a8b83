// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config is permissive on purpose: defaults are applied and
// enforced at the [ClientConfig] level, after all sources have been merged.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.BaseURL == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Notifications.RefreshInterval <= 0 || cfg.Notifications.PageLimit <= 0 {
		return ErrInvalidNotificationConfigs
	}

	return nil
}
