package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-share/models"
)

// Deleting is the one operation the backend cannot undo, so it gets a
// confirmation screen. returnTo is the screen to fall back to on "no".
func (m *mainLoopModel) startConfirmDelete(note models.Note, returnTo screenMode) {
	m.confirmDeleteID = note.ID
	m.confirmDeleteTitle = note.Title
	m.confirmReturn = returnTo
	m.mode = modeConfirmDelete
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.forceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		return m, m.cmdDelete(m.confirmDeleteID)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = m.confirmReturn
	}
	return m, nil
}

func (m mainLoopModel) viewConfirmDelete() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("DELETE NOTE"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Delete %q?\n", fitText(m.confirmDeleteTitle, 50)))
	b.WriteString("This cannot be undone.\n\n")
	b.WriteString(helpStyle.Render("y/enter: delete │ n/esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
