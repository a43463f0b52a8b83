package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-share/internal/adapter"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/validators"
	"github.com/MKhiriev/go-note-share/models"
)

type notes struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewNotesService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) NotesService {
	return &notes{adapter: serverAdapter, validator: validator, logger: logger}
}

// List implements [NotesService].
func (n *notes) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	return n.adapter.ListNotes(ctx, filter)
}

// Get implements [NotesService].
func (n *notes) Get(ctx context.Context, id int64) (models.Note, error) {
	return n.adapter.GetNote(ctx, id)
}

// GetPublic implements [NotesService].
func (n *notes) GetPublic(ctx context.Context, tokenOrID string) (models.Note, error) {
	return n.adapter.GetPublicNote(ctx, tokenOrID)
}

// Create implements [NotesService]. The draft is validated locally before
// any request is issued.
func (n *notes) Create(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	if err := n.validator.Validate(ctx, draft); err != nil {
		return models.Note{}, err
	}
	return n.adapter.CreateNote(ctx, draft)
}

// Update implements [NotesService]. The draft is validated locally before
// any request is issued.
func (n *notes) Update(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error) {
	if err := n.validator.Validate(ctx, draft); err != nil {
		return models.Note{}, err
	}
	return n.adapter.UpdateNote(ctx, id, draft)
}

// Delete implements [NotesService].
func (n *notes) Delete(ctx context.Context, id int64) error {
	return n.adapter.DeleteNote(ctx, id)
}

// ShareByEmail implements [NotesService]. The server shares by user id, so
// the address is resolved through the user lookup endpoint first; a lookup
// that returns nobody with that exact address is ErrShareUserNotFound.
func (n *notes) ShareByEmail(ctx context.Context, id int64, email string) error {
	email = strings.TrimSpace(email)

	users, err := n.adapter.FindUsersByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", email, err)
	}

	var target *models.User
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: %q", ErrShareUserNotFound, email)
	}

	if err = n.adapter.ShareNote(ctx, id, target.ID); err != nil {
		return err
	}

	n.logger.Info().Int64("note_id", id).Int64("user_id", target.ID).Msg("note shared")
	return nil
}
