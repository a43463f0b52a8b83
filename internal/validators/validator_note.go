package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-share/models"
)

const (
	FieldTitle      = "title"
	FieldVisibility = "visibility_status"
	FieldEmail      = "email"
	FieldPassword   = "password"
)

// maxTitleLength matches the input limit enforced by the UI.
const maxTitleLength = 200

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(_ context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldVisibility}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			title := strings.TrimSpace(draft.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if len(title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldVisibility:
			if !draft.VisibilityStatus.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidVisibility, draft.VisibilityStatus)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *NoteValidator) validateCredentials(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			email := strings.TrimSpace(req.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
				return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}
