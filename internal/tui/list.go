package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-share/models"
)

// View implements [tea.Model] for the main loop. The notifications overlay
// takes precedence over whatever screen is underneath.
func (m mainLoopModel) View() string {
	if m.services.SessionService.NotificationsOpen() {
		return m.viewNotifications()
	}

	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeForm:
		return m.viewForm()
	case modeShare:
		return m.viewShare()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modePublic:
		return m.viewPublicPrompt()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.viewListHeader())
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: [")
		b.WriteString(m.searchInput.View())
		b.WriteString("]\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes yet. Press n to create one.\n")
	default:
		b.WriteString(m.viewListTable())
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: open │ n: new │ e: edit │ s: share │ f: filter │ /: search │ o: open public │ N: notifications │ l: logout"
	return renderPage("MY NOTES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewListHeader() string {
	var parts []string

	if user := m.services.SessionService.User(); user != nil {
		parts = append(parts, user.Email)
	}

	if status := statusFilters[m.statusFilterIdx]; status != "" {
		parts = append(parts, "filter: "+string(status))
	}
	if m.searchQuery != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.searchQuery))
	}

	if count := m.services.SessionService.SharedNotesCount(); count > 0 {
		parts = append(parts, fmt.Sprintf("shared with you: %d", count))
	}

	return strings.Join(parts, " │ ")
}

func (m mainLoopModel) viewListTable() string {
	titleWidth := len("Title")
	for _, note := range m.notes {
		if w := len(note.Title); w > titleWidth {
			titleWidth = w
		}
	}
	if titleWidth > 40 {
		titleWidth = 40
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-*s │ %-7s │ %-16s │ %s\n", titleWidth, "Title", "Status", "Updated", "Tags"))
	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", titleWidth))
	b.WriteString("─┼─────────┼──────────────────┼──────────\n")

	for i, note := range m.notes {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-*s │ %-7s │ %-16s │ %s\n",
			cursor,
			titleWidth, fitText(note.Title, titleWidth),
			note.VisibilityStatus,
			formatTime(note.UpdatedAt),
			fitText(note.Tags, 20),
		))
	}

	return b.String()
}

func (m mainLoopModel) viewNotifications() string {
	shared := m.services.SessionService.SharedNotes()

	var b strings.Builder
	if len(shared) == 0 {
		b.WriteString("Nothing has been shared with you.\n")
	} else {
		for _, note := range shared {
			b.WriteString("• ")
			b.WriteString(fitText(note.Title, 40))
			if note.OwnerEmail != "" {
				b.WriteString(" — from ")
				b.WriteString(note.OwnerEmail)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	title := fmt.Sprintf("SHARED WITH YOU (%d)", len(shared))
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc/N: close │ r: refresh")
}

func visibilityBadge(status models.VisibilityStatus) string {
	switch status {
	case models.VisibilityPrivate:
		return badgeStyle.Render("[private]")
	case models.VisibilityShared:
		return badgeStyle.Render("[shared]")
	case models.VisibilityPublic:
		return badgeStyle.Render("[public]")
	default:
		return badgeStyle.Render("[?]")
	}
}
