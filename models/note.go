package models

import (
	"strings"
	"time"
)

// VisibilityStatus controls who can read a note.
type VisibilityStatus string

const (
	// VisibilityPrivate means only the owner can read the note.
	VisibilityPrivate VisibilityStatus = "private"

	// VisibilityShared means the owner plus every user the note has been
	// explicitly shared with can read it.
	VisibilityShared VisibilityStatus = "shared"

	// VisibilityPublic means anyone holding the public link can read the
	// note without authentication.
	VisibilityPublic VisibilityStatus = "public"
)

// Valid reports whether v is one of the three statuses the backend accepts.
func (v VisibilityStatus) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic:
		return true
	default:
		return false
	}
}

// Note is a server-owned note record. The client never persists notes
// locally; every view re-fetches them from the API.
type Note struct {
	// ID is the unique note identifier assigned by the backend.
	ID int64 `json:"id"`

	// OwnerID identifies the user who created the note.
	OwnerID int64 `json:"owner_id"`

	// Title is the note heading. Required on create.
	Title string `json:"title"`

	// Content is the note body in markdown.
	Content string `json:"content"`

	// Tags is a comma-joined tag string ("work,ideas"). May be empty.
	Tags string `json:"tags"`

	// VisibilityStatus is the note's access level.
	VisibilityStatus VisibilityStatus `json:"visibility_status"`

	// CreatedAt and UpdatedAt are backend-maintained timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// OwnerEmail is populated by the backend on notes shared with the
	// current user, so the UI can show who shared them. Empty on own notes.
	OwnerEmail string `json:"owner_email,omitempty"`
}

// TagList splits the comma-joined Tags field into individual tags,
// dropping empty entries.
func (n Note) TagList() []string {
	if strings.TrimSpace(n.Tags) == "" {
		return nil
	}

	parts := strings.Split(n.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// NoteDraft carries the user-editable note fields for create and update
// requests (a Note minus the server-assigned fields).
type NoteDraft struct {
	Title            string           `json:"title"`
	Content          string           `json:"content"`
	Tags             string           `json:"tags"`
	VisibilityStatus VisibilityStatus `json:"visibility_status"`
}

// NormalizeTags canonicalises a raw comma-separated tag string: entries are
// trimmed, empty entries dropped, and the remainder re-joined with commas.
func NormalizeTags(raw string) string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return strings.Join(tags, ",")
}
