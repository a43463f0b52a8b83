package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-share/models"
)

func (m mainLoopModel) viewForm() string {
	title := "NEW NOTE"
	if m.formEditingID != nil {
		title = "EDIT NOTE"
	}

	var b strings.Builder
	b.WriteString("Title      │ [")
	b.WriteString(m.formInputs[formFieldTitle].View())
	b.WriteString("]\n")
	b.WriteString("Tags       │ [")
	b.WriteString(m.formInputs[formFieldTags].View())
	b.WriteString("]\n")
	b.WriteString("Visibility │ ")
	b.WriteString(m.viewVisibilityPicker())
	b.WriteString("\n\n")
	b.WriteString("Content:\n")
	b.WriteString(m.formContent.View())
	b.WriteString("\n")

	if m.formSaving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.formErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.formErr)
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ tab: next field │ ←/→: visibility │ esc: cancel")
}

// viewVisibilityPicker renders the three visibility options with the
// selected one marked; arrows work when the row has focus.
func (m mainLoopModel) viewVisibilityPicker() string {
	options := statusFilters[1:]

	parts := make([]string, len(options))
	for i, option := range options {
		label := string(option)
		if i == m.formVisIdx {
			label = "(" + label + ")"
		} else {
			label = " " + label + " "
		}
		parts[i] = label
	}

	row := strings.Join(parts, " ")
	if m.formFocus == formFieldVisibility {
		row = "> " + row
	} else {
		row = "  " + row
	}
	return row
}

func (m mainLoopModel) viewShare() string {
	var b strings.Builder
	b.WriteString("Share ")
	b.WriteString("\"")
	b.WriteString(fitText(m.detailNote.Title, 40))
	b.WriteString("\" with:\n\n")
	b.WriteString("Email │ [")
	b.WriteString(m.shareInput.View())
	b.WriteString("]\n")

	if m.detailNote.VisibilityStatus == models.VisibilityPrivate {
		b.WriteString("\nSharing makes the note visible to that user.\n")
	}

	if m.shareSaving {
		b.WriteString("\n[Sharing...]\n")
	}
	if m.shareErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.shareErr)
		b.WriteString("\n")
	}

	return renderPage("SHARE NOTE", strings.TrimRight(b.String(), "\n"), "enter: share │ esc: cancel")
}
