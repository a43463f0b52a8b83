// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-share/internal/adapter"
)

// The public prompt opens any publicly visible note by the id or token from
// its shared link, through the unauthenticated endpoint. The resulting note
// is shown read-only since the viewer may not own it.

func (m *mainLoopModel) startPublicPrompt() {
	input := textinput.New()
	input.Placeholder = "note id or public link token"
	input.CharLimit = 64
	input.Width = 40
	input.Focus()
	m.publicInput = input
	m.publicErr = ""
	m.publicLoading = false
	m.mode = modePublic
}

func (m mainLoopModel) updatePublicPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			m.publicErr = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.publicLoading {
				return m, nil
			}
			tokenOrID := strings.TrimSpace(m.publicInput.Value())
			if tokenOrID == "" {
				m.publicErr = "Enter a note id or link token"
				return m, nil
			}
			m.publicErr = ""
			m.publicLoading = true
			return m, m.cmdOpenPublic(tokenOrID)
		}
	}

	var cmd tea.Cmd
	m.publicInput, cmd = m.publicInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewPublicPrompt() string {
	var b strings.Builder
	b.WriteString("Open a public note: [")
	b.WriteString(m.publicInput.View())
	b.WriteString("]\n")

	if m.publicLoading {
		b.WriteString("\nLoading...\n")
	}
	if m.publicErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.publicErr)
		b.WriteString("\n")
	}

	return renderPage("OPEN PUBLIC NOTE", strings.TrimRight(b.String(), "\n"), "enter: open │ esc: back")
}

func (m mainLoopModel) cmdOpenPublic(tokenOrID string) tea.Cmd {
	ctx := m.ctx
	notesService := m.services.NotesService

	return func() tea.Msg {
		note, err := notesService.GetPublic(ctx, tokenOrID)
		return publicNoteLoadedMsg{note: note, err: err}
	}
}

func publicNoteErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrNotFound) {
		return "No public note with that id or token"
	}
	return humanizeServerUnavailableError(err)
}
