// Package store implements the client's only piece of persistent state: the
// bearer token of the current session. Everything else the client shows is
// re-fetched from the backend on demand.
package store

// SessionStore persists a single opaque bearer token between client runs.
// Absence of a stored token means the user is anonymous.
type SessionStore interface {
	// Save persists token, replacing any previously stored one.
	Save(token string) error

	// Load returns the persisted token. Returns [ErrSessionNotFound] when
	// no token is stored.
	Load() (string, error)

	// Clear removes the persisted token. Clearing an empty store is a
	// no-op, not an error.
	Clear() error
}
