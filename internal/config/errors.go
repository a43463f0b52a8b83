package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid backend API settings
	// (for example, a missing base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid session storage settings
	// (for example, an empty session file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNotificationConfigs indicates invalid shared-notes refresh
	// settings (for example, a zero refresh interval or page limit).
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
)
