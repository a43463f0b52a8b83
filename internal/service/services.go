package service

import (
	"github.com/MKhiriev/go-note-share/internal/adapter"
	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/store"
	"github.com/MKhiriev/go-note-share/internal/validators"
)

type ClientServices struct {
	SessionService SessionService
	NotesService   NotesService
	RefreshJob     NotificationsJob
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, cfg config.ClientNotifications, logger *logger.Logger) *ClientServices {
	validator := validators.NewNoteValidator()
	sessionSvc := NewSessionService(sessions, serverAdapter, validator, cfg.PageLimit, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		NotesService:   NewNotesService(serverAdapter, validator, logger),
		RefreshJob:     NewNotificationsJob(sessionSvc),
	}
}
