package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-share/models"
)

// NavigateTo asks the router to switch pages. Payload, when set, is
// delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult reports a finished login or register transition.
type AuthResult struct {
	Err   error
	Email string
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type noteSharedMsg struct {
	email string
	err   error
}

type sharedNotesRefreshedMsg struct{}

type clearStatusMsg struct{}

// publicNoteLoadedMsg carries the result of opening a note through the
// unauthenticated public endpoint.
type publicNoteLoadedMsg struct {
	note models.Note
	err  error
}
