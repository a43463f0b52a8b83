package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-share/internal/markdown"
	"github.com/MKhiriev/go-note-share/models"
)

func (m mainLoopModel) viewDetail() string {
	note := m.detailNote

	var b strings.Builder
	b.WriteString(visibilityBadge(note.VisibilityStatus))
	if note.OwnerEmail != "" {
		b.WriteString(" │ by ")
		b.WriteString(note.OwnerEmail)
	}
	b.WriteString(" │ updated ")
	b.WriteString(formatTime(note.UpdatedAt))
	b.WriteString("\n")

	if note.Tags != "" {
		b.WriteString("Tags: ")
		b.WriteString(note.Tags)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	contentWidth := m.width - 6
	if contentWidth > 100 {
		contentWidth = 100
	}
	rendered := markdown.Render(note.Content, contentWidth)
	if rendered == "" {
		rendered = "(empty)"
	}
	b.WriteString(rendered)
	b.WriteString("\n")

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

	hotKeys := "esc: back │ e: edit │ s: share │ c: copy │ ctrl+d: delete"
	if m.detailReadOnly {
		hotKeys = "esc: back │ c: copy"
	}
	if note.VisibilityStatus == models.VisibilityPublic {
		hotKeys += " │ p: copy public link"
	}

	return renderPage(strings.ToUpper(fitText(note.Title, 50)), strings.TrimRight(b.String(), "\n"), hotKeys)
}
