package models

// User represents the account identity returned by the authentication
// endpoints. The backend may attach additional fields over time; the client
// relies only on ID and Email and treats everything else as opaque.
type User struct {
	// ID is the unique identifier of the user assigned by the backend.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the user. Also used as the
	// lookup key when sharing a note with another account.
	Email string `json:"email"`
}
