package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-share/internal/adapter"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/store"
	"github.com/MKhiriev/go-note-share/internal/validators"
	"github.com/MKhiriev/go-note-share/models"
)

type session struct {
	sessions  store.SessionStore
	adapter   adapter.ServerAdapter
	validator validators.Validator
	pageLimit int
	logger    *logger.Logger

	mu                sync.RWMutex
	user              *models.User
	loading           bool
	sharedNotes       []models.Note
	notificationsOpen bool

	// gen is bumped on every identity transition. A shared-notes refresh
	// snapshots it before fetching and its result is applied only while
	// the snapshot is still current, so a slow fetch started under an old
	// identity cannot overwrite state belonging to a newer one.
	gen uint64
}

// NewSessionService constructs the session authority. pageLimit bounds the
// shared-notes listing request (an approximation of "all shared notes" in
// one call, not pagination).
func NewSessionService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, pageLimit int, logger *logger.Logger) SessionService {
	return &session{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		pageLimit: pageLimit,
		logger:    logger,
	}
}

// Init implements [SessionService].
func (s *session) Init(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	raw, err := s.sessions.Load()
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Error().Err(err).Msg("read persisted session")
		}
		// Anonymous: no restoration call is issued at all.
		return
	}

	// Claims are decoded for diagnostics only; whether the token is still
	// good is the backend's call.
	if claims, claimsErr := (models.Token{AccessToken: raw}).Claims(); claimsErr == nil {
		s.logger.Debug().
			Int64("user_id", claims.UserID).
			Time("expires_at", claims.ExpiresAt).
			Msg("persisted token found")
	}

	user, err := s.adapter.Me(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session restoration failed, discarding token")
		s.discardToken()
		s.clearIdentity()
		return
	}

	s.applyUser(user)
	s.RefreshSharedNotes(ctx)
	s.logger.Info().Int64("user_id", user.ID).Msg("session restored")
}

// Login implements [SessionService].
func (s *session) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	token, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err = s.sessions.Save(token.AccessToken); err != nil {
		return fmt.Errorf("%w: persist token: %v", ErrLoginFailed, err)
	}

	user, err := s.adapter.Me(ctx)
	if err != nil {
		// No partial write: a login that cannot resolve its identity
		// leaves no token behind.
		s.discardToken()
		s.clearIdentity()
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	s.applyUser(user)
	s.RefreshSharedNotes(ctx)
	s.logger.Info().Int64("user_id", user.ID).Msg("login successful")
	return nil
}

// Register implements [SessionService].
func (s *session) Register(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.validator.Validate(ctx, models.RegisterRequest{Email: email, Password: password}); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterFailed, err)
	}

	if _, err := s.adapter.Register(ctx, email, password); err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	return s.Login(ctx, email, password)
}

// Logout implements [SessionService].
func (s *session) Logout() {
	s.discardToken()
	s.clearIdentity()
	s.logger.Info().Msg("logged out")
}

// RefreshSharedNotes implements [SessionService].
func (s *session) RefreshSharedNotes(ctx context.Context) {
	s.mu.RLock()
	gen := s.gen
	authenticated := s.user != nil
	s.mu.RUnlock()

	if !authenticated {
		s.storeSharedNotes(gen, nil)
		return
	}

	notes, err := s.adapter.ListNotes(ctx, models.NoteFilter{
		Status: models.VisibilityShared,
		Limit:  s.pageLimit,
	})
	if err != nil {
		// Fail-safe: the notification affordance degrades to empty, the
		// authentication state is untouched, and no error reaches the UI.
		s.logger.Warn().Err(err).Msg("shared notes refresh failed")
		s.storeSharedNotes(gen, nil)
		return
	}

	s.storeSharedNotes(gen, notes)
}

// User implements [SessionService].
func (s *session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated implements [SessionService].
func (s *session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading implements [SessionService].
func (s *session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SharedNotes implements [SessionService].
func (s *session) SharedNotes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, len(s.sharedNotes))
	copy(notes, s.sharedNotes)
	return notes
}

// SharedNotesCount implements [SessionService].
func (s *session) SharedNotesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sharedNotes)
}

// OpenNotifications implements [SessionService].
func (s *session) OpenNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationsOpen = true
}

// CloseNotifications implements [SessionService].
func (s *session) CloseNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationsOpen = false
}

// NotificationsOpen implements [SessionService].
func (s *session) NotificationsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notificationsOpen
}

func (s *session) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// applyUser installs a new identity and starts a new generation.
func (s *session) applyUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.gen++
}

// clearIdentity resets everything derived from the user: identity, shared
// notes, and the notifications overlay. Starts a new generation.
func (s *session) clearIdentity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.sharedNotes = nil
	s.notificationsOpen = false
	s.gen++
}

// storeSharedNotes applies a refresh result unless the identity has moved
// on since the refresh snapshotted gen.
func (s *session) storeSharedNotes(gen uint64, notes []models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	s.sharedNotes = notes
}

func (s *session) discardToken() {
	if err := s.sessions.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("clear persisted session")
	}
}
