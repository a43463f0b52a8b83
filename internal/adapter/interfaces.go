// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// notes backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the REST protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-share/models"
)

// ServerAdapter defines transport-agnostic communication with the notes
// backend. Implementations are responsible for serialisation, bearer header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// The adapter holds no identity state of its own: the bearer token is read
// from the persisted session store at call time, and a 401 response clears
// the persisted token as a side effect before the call's error is returned.
type ServerAdapter interface {
	// Me fetches the identity of the user the current bearer token belongs
	// to. Used to restore a session at startup and to populate the user
	// after login.
	Me(ctx context.Context) (models.User, error)

	// Login exchanges credentials for a bearer token. The request is
	// form-encoded (username/password) per the backend's OAuth2-style
	// login endpoint. The returned token is NOT persisted by the adapter;
	// persisting it is the session service's transition step.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// Register creates a new account. The backend returns the created
	// user; a token is only obtained by a subsequent Login.
	Register(ctx context.Context, email, password string) (models.User, error)

	// ListNotes fetches the notes visible to the current user, narrowed by
	// filter. Zero-valued filter fields are omitted from the query string.
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	// GetNote fetches a single note by id. The backend enforces access:
	// owner, share recipient, or public.
	GetNote(ctx context.Context, id int64) (models.Note, error)

	// GetPublicNote fetches a publicly visible note by its link token or
	// id. Works without authentication.
	GetPublicNote(ctx context.Context, tokenOrID string) (models.Note, error)

	// CreateNote creates a note from draft and returns the stored record.
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// UpdateNote replaces the editable fields of note id with draft and
	// returns the updated record.
	UpdateNote(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error)

	// DeleteNote permanently deletes note id.
	DeleteNote(ctx context.Context, id int64) error

	// ShareNote grants userID read access to note id.
	ShareNote(ctx context.Context, id int64, userID int64) error

	// FindUsersByEmail looks up accounts by exact email. The backend
	// returns at most one user since emails are unique, but the wire shape
	// is a sequence.
	FindUsersByEmail(ctx context.Context, email string) ([]models.User, error)
}
