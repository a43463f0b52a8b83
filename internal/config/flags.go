package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL (e.g. http://localhost:8000/api/v1)
//	-request-timeout outbound request timeout (e.g. "30s", "1m")
//	-session-file persisted session token file path
//	-refresh-interval shared-notes refresh interval (e.g. "5m")
//	-page-limit shared-notes listing page bound
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var sessionFile string
	var refreshInterval time.Duration
	var pageLimit int
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionFile, "session-file", "", "Session token file path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Shared-notes refresh interval (e.g., 5m)")
	flag.IntVar(&pageLimit, "page-limit", 0, "Shared-notes listing page bound")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionFile: sessionFile,
		},
		Notifications: Notifications{
			RefreshInterval: refreshInterval,
			PageLimit:       pageLimit,
		},
		JSONFilePath: jsonConfigPath,
	}
}
