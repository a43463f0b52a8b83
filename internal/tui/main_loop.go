package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-share/internal/service"
	"github.com/MKhiriev/go-note-share/models"
)

type screenMode int

const (
	modeList screenMode = iota
	modeDetail
	modeForm
	modeShare
	modeConfirmDelete
	modePublic
)

// statusFilters cycles with the "f" key. The empty value means no filter.
var statusFilters = []models.VisibilityStatus{"", models.VisibilityPrivate, models.VisibilityShared, models.VisibilityPublic}

type mainLoopModel struct {
	ctx           context.Context
	services      *service.ClientServices
	publicLinkFor func(noteID int64) string

	mode    screenMode
	width   int
	height  int
	notes   []models.Note
	idx     int
	loading bool
	status  string
	errMsg  string

	statusFilterIdx int
	searchQuery     string
	searching       bool
	searchInput     textinput.Model

	detailNote models.Note
	// detailReadOnly marks a note opened through the public endpoint:
	// the viewer may not be its owner, so editing keys are disabled.
	detailReadOnly bool

	confirmDeleteID    int64
	confirmDeleteTitle string
	confirmReturn      screenMode

	publicInput   textinput.Model
	publicLoading bool
	publicErr     string

	formEditingID *int64
	formInputs    []textinput.Model
	formContent   textarea.Model
	formVisIdx    int
	formFocus     int
	formSaving    bool
	formErr       string

	shareInput  textinput.Model
	shareSaving bool
	shareErr    string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, publicLinkFor func(noteID int64) string) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "search title and content"
	search.Width = 40

	return mainLoopModel{
		ctx:           ctx,
		services:      services,
		publicLinkFor: publicLinkFor,
		loading:       true,
		searchInput:   search,
		width:         80,
		height:        24,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case noteSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.resetForm()
		m.status = "Note saved"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Note deleted"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case noteSharedMsg:
		m.shareSaving = false
		if msg.err != nil {
			m.shareErr = shareErrorMessage(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.shareInput.SetValue("")
		m.shareErr = ""
		m.status = "Note shared with " + msg.email
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case sharedNotesRefreshedMsg:
		m.status = fmt.Sprintf("Notifications refreshed: %d shared with you", m.services.SessionService.SharedNotesCount())
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case publicNoteLoadedMsg:
		m.publicLoading = false
		if msg.err != nil {
			m.publicErr = publicNoteErrorMessage(msg.err)
			return m, nil
		}
		m.detailNote = msg.note
		m.detailReadOnly = true
		m.mode = modeDetail
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeShare:
			return m.updateShare(msg)
		case modePublic:
			return m.updatePublicPrompt(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m, nil
	}

	// The notifications overlay swallows everything except its own keys.
	if m.services.SessionService.NotificationsOpen() {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.notifications):
			m.services.SessionService.CloseNotifications()
		case key.Matches(keyMsg, keys.refresh):
			return m, m.cmdRefreshSharedNotes()
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeShare:
		return m.updateShare(msg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case modePublic:
		return m.updatePublicPrompt(msg)
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	return m.updateList(keyMsg)
}

// ── list screen ──────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, cmdClearStatus()
		}
		m.detailNote = note
		m.detailReadOnly = false
		m.mode = modeDetail
	case key.Matches(keyMsg, keys.newNote):
		m.startCreate()
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.edit):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, cmdClearStatus()
		}
		m.startEdit(note)
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, cmdClearStatus()
		}
		m.startConfirmDelete(note, modeList)
	case key.Matches(keyMsg, keys.share):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, cmdClearStatus()
		}
		m.startShare(note)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.filter):
		m.statusFilterIdx = (m.statusFilterIdx + 1) % len(statusFilters)
		m.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.openPublic):
		m.startPublicPrompt()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), m.cmdRefreshSharedNotes())
	case key.Matches(keyMsg, keys.notifications):
		m.services.SessionService.OpenNotifications()
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.searching = false
			m.searchInput.Blur()
			m.searchQuery = strings.TrimSpace(m.searchInput.Value())
			m.loading = true
			return m, m.cmdLoadNotes()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// ── detail screen ────────────────────────────────────────────────────────────

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeList
	case key.Matches(keyMsg, keys.edit):
		if m.detailReadOnly {
			return m, nil
		}
		m.startEdit(m.detailNote)
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.delete):
		if m.detailReadOnly {
			return m, nil
		}
		m.startConfirmDelete(m.detailNote, modeDetail)
	case key.Matches(keyMsg, keys.share):
		if m.detailReadOnly {
			return m, nil
		}
		m.startShare(m.detailNote)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copyLink):
		if m.detailNote.VisibilityStatus != models.VisibilityPublic {
			m.status = "Only public notes have a link"
			return m, cmdClearStatus()
		}
		link := m.publicLinkFor(m.detailNote.ID)
		if err := clipboard.WriteAll(link); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Public link copied"
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.copyContent):
		if err := clipboard.WriteAll(m.detailNote.Content); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Content copied"
		return m, cmdClearStatus()
	}
	return m, nil
}

// ── create / edit form ───────────────────────────────────────────────────────

const (
	formFieldTitle = iota
	formFieldTags
	formFieldVisibility
	formFieldContent
	formFieldCount
)

func (m *mainLoopModel) startCreate() {
	m.formEditingID = nil
	m.initForm(models.NoteDraft{VisibilityStatus: models.VisibilityPrivate})
	m.mode = modeForm
}

func (m *mainLoopModel) startEdit(note models.Note) {
	id := note.ID
	m.formEditingID = &id
	m.initForm(models.NoteDraft{
		Title:            note.Title,
		Content:          note.Content,
		Tags:             note.Tags,
		VisibilityStatus: note.VisibilityStatus,
	})
	m.mode = modeForm
}

func (m *mainLoopModel) initForm(draft models.NoteDraft) {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 40
	title.SetValue(draft.Title)
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "tags, comma separated"
	tags.Width = 40
	tags.SetValue(draft.Tags)

	content := textarea.New()
	content.Placeholder = "content (markdown)"
	content.SetWidth(54)
	content.SetHeight(8)
	content.SetValue(draft.Content)

	m.formInputs = []textinput.Model{title, tags}
	m.formContent = content
	m.formVisIdx = visibilityIndex(draft.VisibilityStatus)
	m.formFocus = formFieldTitle
	m.formErr = ""
	m.formSaving = false
}

func (m *mainLoopModel) resetForm() {
	m.formEditingID = nil
	m.formInputs = nil
	m.formErr = ""
	m.formSaving = false
}

func visibilityIndex(status models.VisibilityStatus) int {
	for i, s := range statusFilters[1:] {
		if s == status {
			return i
		}
	}
	return 0
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			m.resetForm()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formSetFocus((m.formFocus + 1) % formFieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formSetFocus((m.formFocus - 1 + formFieldCount) % formFieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.submitForm()
		case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
			if m.formFocus == formFieldVisibility {
				options := statusFilters[1:]
				if key.Matches(keyMsg, keys.right) {
					m.formVisIdx = (m.formVisIdx + 1) % len(options)
				} else {
					m.formVisIdx = (m.formVisIdx - 1 + len(options)) % len(options)
				}
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			// Enter moves on from the single-line fields; inside the
			// textarea it inserts a newline.
			if m.formFocus != formFieldContent {
				m.formSetFocus((m.formFocus + 1) % formFieldCount)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case formFieldTitle, formFieldTags:
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	case formFieldContent:
		m.formContent, cmd = m.formContent.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) formSetFocus(target int) {
	m.formInputs[formFieldTitle].Blur()
	m.formInputs[formFieldTags].Blur()
	m.formContent.Blur()

	m.formFocus = target
	switch target {
	case formFieldTitle, formFieldTags:
		m.formInputs[target].Focus()
	case formFieldContent:
		m.formContent.Focus()
	}
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	if m.formSaving {
		return m, nil
	}

	title := strings.TrimSpace(m.formInputs[formFieldTitle].Value())
	if title == "" {
		m.formErr = "Title is required"
		return m, nil
	}

	draft := models.NoteDraft{
		Title:            title,
		Content:          m.formContent.Value(),
		Tags:             models.NormalizeTags(m.formInputs[formFieldTags].Value()),
		VisibilityStatus: statusFilters[1:][m.formVisIdx],
	}

	m.formErr = ""
	m.formSaving = true
	return m, m.cmdSave(draft, m.formEditingID)
}

// ── share prompt ─────────────────────────────────────────────────────────────

func (m *mainLoopModel) startShare(note models.Note) {
	m.detailNote = note
	input := textinput.New()
	input.Placeholder = "user email"
	input.CharLimit = 254
	input.Width = 40
	input.Focus()
	m.shareInput = input
	m.shareErr = ""
	m.shareSaving = false
	m.mode = modeShare
}

func (m mainLoopModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			m.shareErr = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.shareSaving {
				return m, nil
			}
			email := strings.TrimSpace(m.shareInput.Value())
			if email == "" {
				m.shareErr = "Email is required"
				return m, nil
			}
			m.shareErr = ""
			m.shareSaving = true
			return m, m.cmdShare(m.detailNote.ID, email)
		}
	}

	var cmd tea.Cmd
	m.shareInput, cmd = m.shareInput.Update(msg)
	return m, cmd
}

// ── commands ─────────────────────────────────────────────────────────────────

// statusLifetime is how long transient status lines stay on screen.
const statusLifetime = 4 * time.Second

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	notesService := m.services.NotesService
	filter := models.NoteFilter{
		Status: statusFilters[m.statusFilterIdx],
		Query:  m.searchQuery,
	}

	return func() tea.Msg {
		notes, err := notesService.List(ctx, filter)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdSave(draft models.NoteDraft, editingID *int64) tea.Cmd {
	ctx := m.ctx
	notesService := m.services.NotesService

	return func() tea.Msg {
		var (
			note models.Note
			err  error
		)
		if editingID != nil {
			note, err = notesService.Update(ctx, *editingID, draft)
		} else {
			note, err = notesService.Create(ctx, draft)
		}
		return noteSavedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	notesService := m.services.NotesService

	return func() tea.Msg {
		return noteDeletedMsg{err: notesService.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdShare(noteID int64, email string) tea.Cmd {
	ctx := m.ctx
	notesService := m.services.NotesService

	return func() tea.Msg {
		return noteSharedMsg{email: email, err: notesService.ShareByEmail(ctx, noteID, email)}
	}
}

func (m mainLoopModel) cmdRefreshSharedNotes() tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService

	return func() tea.Msg {
		session.RefreshSharedNotes(ctx)
		return sharedNotesRefreshedMsg{}
	}
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func shareErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrShareUserNotFound) {
		return "No user with that email"
	}
	return humanizeServerUnavailableError(err)
}
