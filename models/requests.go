// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the JSON body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShareRequest is the JSON body of POST /notes/{id}/share. UserID is the
// account the note is shared with; the share target is resolved from an
// email address beforehand via the user lookup endpoint.
type ShareRequest struct {
	UserID int64 `json:"user_id"`
}

// NoteFilter narrows the note listing endpoint. Zero values mean
// "no constraint" and are omitted from the query string.
type NoteFilter struct {
	// Status restricts results to one visibility status.
	Status VisibilityStatus

	// Query is a free-text search over note titles and tags.
	Query string

	// Limit bounds the number of returned notes. The backend treats it as
	// a page size; the client uses a single large page, not pagination.
	Limit int
}
