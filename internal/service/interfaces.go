// Package service holds the client's business layer: the session service
// owning authentication state and the shared-notes notification data, the
// notes service orchestrating note operations for the page layer, and the
// background job keeping the notification data fresh.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-share/models"
)

// SessionService is the single authority for "who is the current user" and
// "what has been shared with them". Every page consumes it; there is exactly
// one instance per running client.
//
// All methods are safe for concurrent use. State-changing transitions
// (Init, Login, Register, Logout) execute their steps strictly in sequence;
// overlapping transitions are resolved by an internal generation counter
// so a stale in-flight result can never overwrite newer state.
type SessionService interface {
	// Init attempts silent session restoration from the persisted token.
	// With no token persisted it settles anonymous without any network
	// call. With a token present it validates it against the backend;
	// any failure discards the token and settles anonymous. Init never
	// fails the application start: callers check IsAuthenticated after.
	Init(ctx context.Context)

	// Login authenticates with the backend. On success the token is
	// persisted, the user populated, and the shared-notes list refreshed
	// before Login returns. On failure no token is left persisted and the
	// error is returned to the caller. Navigation is the caller's
	// responsibility.
	Login(ctx context.Context, email, password string) error

	// Register creates an account and, on success, performs the Login
	// transition with the same credentials. Registration success followed
	// by a failed login is reported as overall failure.
	Register(ctx context.Context, email, password string) error

	// Logout clears the persisted token, the user, and the shared-notes
	// state, and closes the notifications overlay. It cannot fail and
	// performs no network calls.
	Logout()

	// User returns the current user, or nil when anonymous.
	User() *models.User

	// IsAuthenticated reports whether a user is present. Always exactly
	// User() != nil.
	IsAuthenticated() bool

	// Loading reports whether a session transition is in flight.
	Loading() bool

	// SharedNotes returns the notes other users have shared with the
	// current user, as of the last refresh. Empty whenever anonymous.
	SharedNotes() []models.Note

	// SharedNotesCount returns len(SharedNotes()); the two are always
	// derived from the same fetch and cannot drift.
	SharedNotesCount() int

	// RefreshSharedNotes re-fetches the shared-notes list. Best-effort:
	// a fetch failure resets the list to empty, is logged, and never
	// changes the authentication state.
	RefreshSharedNotes(ctx context.Context)

	// OpenNotifications / CloseNotifications / NotificationsOpen control
	// the notifications overlay. Pure state toggles with no side effects
	// beyond the flag.
	OpenNotifications()
	CloseNotifications()
	NotificationsOpen() bool
}

// NotesService exposes note operations to the page layer. Errors from the
// transport propagate unchanged so pages can match sentinel values from the
// adapter package for user-visible messaging.
type NotesService interface {
	// List fetches the notes visible to the current user, narrowed by
	// filter.
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	// Get fetches a single note by id.
	Get(ctx context.Context, id int64) (models.Note, error)

	// GetPublic fetches a publicly visible note without authentication.
	GetPublic(ctx context.Context, tokenOrID string) (models.Note, error)

	// Create stores a new note and returns the created record.
	Create(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// Update replaces the editable fields of note id.
	Update(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error)

	// Delete permanently removes note id.
	Delete(ctx context.Context, id int64) error

	// ShareByEmail resolves email to an account and grants it read access
	// to note id. Returns [ErrShareUserNotFound] when no account matches.
	ShareByEmail(ctx context.Context, id int64, email string) error
}

// NotificationsJob periodically refreshes the shared-notes list while the
// client is running.
type NotificationsJob interface {
	// Start launches the background refresh loop. A non-positive interval
	// falls back to a default. Calling Start again restarts the loop.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has fully exited. Safe to
	// call when the job is not running.
	Stop()
}
