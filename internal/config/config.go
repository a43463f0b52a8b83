// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-share client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// API holds the backend endpoint address and outbound request settings.
	API API `envPrefix:"API_"`

	// Storage holds the local session persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Notifications holds the shared-notes notification settings.
	Notifications Notifications `envPrefix:"NOTIFICATIONS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown in the TUI build-info overlay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// API holds settings for the outbound connection to the notes backend.
type API struct {
	// BaseURL is the backend API root, including the version prefix
	// (e.g. "http://localhost:8000/api/v1"). All request paths are
	// resolved relative to it.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration for a single outbound request
	// (e.g. "30s"). Zero disables the client-side timeout.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings. The client persists exactly one
// thing between runs: the bearer token of the current session.
type Storage struct {
	// SessionFile is the path of the JSON file holding the persisted
	// session token. The special value ":memory:" keeps the session in
	// process memory only.
	// Env: STORAGE_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// Notifications holds settings for the shared-notes notification refresh.
type Notifications struct {
	// RefreshInterval defines how often the background job re-fetches the
	// shared-notes list while the client is running (e.g. "5m").
	// Env: NOTIFICATIONS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// PageLimit is the fixed upper bound requested from the note listing
	// endpoint when fetching shared notes. It approximates "all shared
	// notes" in a single call; it is not a pagination cursor.
	// Env: NOTIFICATIONS_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
