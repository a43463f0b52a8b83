package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-share/models"
)

// ── NoteDraft ────────────────────────────────────────────────────────────────

func TestNoteValidator_Draft(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.NoteDraft
		wantErr error
	}{
		{
			name:  "valid draft",
			draft: models.NoteDraft{Title: "groceries", VisibilityStatus: models.VisibilityPrivate},
		},
		{
			name:    "empty title",
			draft:   models.NoteDraft{VisibilityStatus: models.VisibilityPrivate},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			draft:   models.NoteDraft{Title: "   ", VisibilityStatus: models.VisibilityPrivate},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "oversized title",
			draft:   models.NoteDraft{Title: strings.Repeat("x", maxTitleLength+1), VisibilityStatus: models.VisibilityShared},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "unknown visibility",
			draft:   models.NoteDraft{Title: "ok", VisibilityStatus: "friends-only"},
			wantErr: ErrInvalidVisibility,
		},
		{
			name:    "empty visibility",
			draft:   models.NoteDraft{Title: "ok"},
			wantErr: ErrInvalidVisibility,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_Draft_FieldScoping(t *testing.T) {
	v := NewNoteValidator()
	draft := models.NoteDraft{VisibilityStatus: models.VisibilityPrivate}

	// Title missing, but only visibility requested.
	assert.NoError(t, v.Validate(context.Background(), draft, FieldVisibility))
	assert.ErrorIs(t, v.Validate(context.Background(), draft, FieldTitle), ErrEmptyTitle)
}

func TestNoteValidator_Draft_PointerAccepted(t *testing.T) {
	v := NewNoteValidator()
	draft := &models.NoteDraft{Title: "ok", VisibilityStatus: models.VisibilityPublic}

	assert.NoError(t, v.Validate(context.Background(), draft))
}

// ── Credentials ──────────────────────────────────────────────────────────────

func TestNoteValidator_Credentials(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{name: "valid", req: models.RegisterRequest{Email: "user@example.com", Password: "secret"}},
		{name: "empty email", req: models.RegisterRequest{Password: "secret"}, wantErr: ErrEmptyEmail},
		{name: "no at sign", req: models.RegisterRequest{Email: "user.example.com", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "email with spaces", req: models.RegisterRequest{Email: "user @example.com", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "empty password", req: models.RegisterRequest{Email: "user@example.com"}, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Note{}), ErrUnsupportedType)
}

func TestNoteValidator_UnknownField(t *testing.T) {
	v := NewNoteValidator()
	draft := models.NoteDraft{Title: "ok", VisibilityStatus: models.VisibilityPrivate}

	assert.ErrorIs(t, v.Validate(context.Background(), draft, "color"), ErrUnknownField)
}
