// Package config loads and merges the go-note-share client configuration
// from environment variables, command-line flags, and an optional JSON file.
//
// Sources are combined by a small builder ([GetStructuredConfig]) using
// non-destructive merging: a later source fills only the fields earlier
// sources left at their zero values. [GetClientConfig] then projects the
// merged result into the [ClientConfig] view consumed by the client,
// applying defaults and validating the outcome.
package config
