package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetClientConfig] when a value is not supplied by any
// configuration source.
const (
	// DefaultBaseURL points at a locally running backend.
	DefaultBaseURL = "http://localhost:8000/api/v1"

	// DefaultRefreshInterval is how often shared notes are re-fetched in
	// the background.
	DefaultRefreshInterval = 5 * time.Minute

	// DefaultPageLimit bounds a single shared-notes fetch. Large enough to
	// approximate "all shared notes" for any realistic account.
	DefaultPageLimit = 1000
)

// ClientAPI holds network settings used by the client transport layer.
type ClientAPI struct {
	// BaseURL is the backend API root used by the HTTP adapter.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	// Zero disables the client-side timeout.
	RequestTimeout time.Duration
}

// ClientStorage groups local persistence settings.
type ClientStorage struct {
	// SessionFile is the path of the persisted session token file.
	SessionFile string
}

// ClientNotifications groups shared-notes notification settings.
type ClientNotifications struct {
	// RefreshInterval defines how often the background refresh job runs.
	RefreshInterval time.Duration
	// PageLimit bounds a single shared-notes listing request.
	PageLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// API contains the backend address and request timeout.
	API ClientAPI
	// Storage contains session persistence settings.
	Storage ClientStorage
	// Notifications contains shared-notes refresh settings.
	Notifications ClientNotifications
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, applying defaults for anything the
// sources left unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: cfg.App,
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionFile: cfg.Storage.SessionFile,
		},
		Notifications: ClientNotifications{
			RefreshInterval: cfg.Notifications.RefreshInterval,
			PageLimit:       cfg.Notifications.PageLimit,
		},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.Notifications.RefreshInterval == 0 {
		cfg.Notifications.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Notifications.PageLimit == 0 {
		cfg.Notifications.PageLimit = DefaultPageLimit
	}
	if cfg.Storage.SessionFile == "" {
		cfg.Storage.SessionFile = defaultSessionFile()
	}
}

// defaultSessionFile resolves the session file location under the user's
// config directory, falling back to a dotfile next to the executable when
// the config directory cannot be determined.
func defaultSessionFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "go-note-share", "session.json")
	}

	execPath, _ := os.Executable()
	return filepath.Join(filepath.Dir(execPath), ".note-session.json")
}
