// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/store"
	"github.com/MKhiriev/go-note-share/internal/validators"
	"github.com/MKhiriev/go-note-share/models"
)

// stubServerAdapter implements adapter.ServerAdapter with overridable
// behaviors and call counters — does not require mockgen.
type stubServerAdapter struct {
	loginFn    func(ctx context.Context, email, password string) (models.Token, error)
	registerFn func(ctx context.Context, email, password string) (models.User, error)
	meFn       func(ctx context.Context) (models.User, error)
	listFn     func(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	loginCalls    atomic.Int64
	registerCalls atomic.Int64
	meCalls       atomic.Int64
	listCalls     atomic.Int64
}

func (s *stubServerAdapter) Login(ctx context.Context, email, password string) (models.Token, error) {
	s.loginCalls.Add(1)
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return models.Token{AccessToken: "stub-token", TokenType: "bearer"}, nil
}

func (s *stubServerAdapter) Register(ctx context.Context, email, password string) (models.User, error) {
	s.registerCalls.Add(1)
	if s.registerFn != nil {
		return s.registerFn(ctx, email, password)
	}
	return models.User{ID: 1, Email: email}, nil
}

func (s *stubServerAdapter) Me(ctx context.Context) (models.User, error) {
	s.meCalls.Add(1)
	if s.meFn != nil {
		return s.meFn(ctx)
	}
	return models.User{ID: 1, Email: "user@example.com"}, nil
}

func (s *stubServerAdapter) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	s.listCalls.Add(1)
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, nil
}

func (s *stubServerAdapter) GetNote(_ context.Context, _ int64) (models.Note, error) {
	return models.Note{}, nil
}

func (s *stubServerAdapter) GetPublicNote(_ context.Context, _ string) (models.Note, error) {
	return models.Note{}, nil
}

func (s *stubServerAdapter) CreateNote(_ context.Context, _ models.NoteDraft) (models.Note, error) {
	return models.Note{}, nil
}

func (s *stubServerAdapter) UpdateNote(_ context.Context, _ int64, _ models.NoteDraft) (models.Note, error) {
	return models.Note{}, nil
}

func (s *stubServerAdapter) DeleteNote(_ context.Context, _ int64) error { return nil }

func (s *stubServerAdapter) ShareNote(_ context.Context, _ int64, _ int64) error { return nil }

func (s *stubServerAdapter) FindUsersByEmail(_ context.Context, _ string) ([]models.User, error) {
	return nil, nil
}

func newTestSession(t *testing.T, serverAdapter *stubServerAdapter) (SessionService, store.SessionStore) {
	t.Helper()

	sessions, err := store.NewSessionStore(":memory:")
	require.NoError(t, err)

	return NewSessionService(sessions, serverAdapter, validators.NewNoteValidator(), 1000, logger.Nop()), sessions
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestSession_Init_NoToken_SettlesAnonymousWithoutNetwork(t *testing.T) {
	serverAdapter := &stubServerAdapter{}
	svc, _ := newTestSession(t, serverAdapter)

	svc.Init(context.Background())

	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.User())
	assert.Equal(t, int64(0), serverAdapter.meCalls.Load(), "no token — no restoration call")
	assert.Equal(t, int64(0), serverAdapter.listCalls.Load())
}

func TestSession_Init_ValidToken_RestoresUserAndFetchesSharedNotes(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		listFn: func(_ context.Context, filter models.NoteFilter) ([]models.Note, error) {
			assert.Equal(t, models.VisibilityShared, filter.Status)
			assert.Equal(t, 1000, filter.Limit)
			return []models.Note{{ID: 7, Title: "shared with me"}}, nil
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)
	require.NoError(t, sessions.Save("persisted-token"))

	svc.Init(context.Background())

	require.True(t, svc.IsAuthenticated())
	assert.Equal(t, int64(1), svc.User().ID)
	assert.Equal(t, int64(1), serverAdapter.meCalls.Load())
	assert.Equal(t, int64(1), serverAdapter.listCalls.Load(), "exactly one shared-notes fetch")
	assert.Equal(t, 1, svc.SharedNotesCount())
}

func TestSession_Init_InvalidToken_DiscardsTokenAndSettlesAnonymous(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		meFn: func(_ context.Context) (models.User, error) {
			return models.User{}, errors.New("401 unauthorized")
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)
	require.NoError(t, sessions.Save("expired-token"))

	svc.Init(context.Background())

	assert.False(t, svc.IsAuthenticated())
	_, err := sessions.Load()
	assert.ErrorIs(t, err, store.ErrSessionNotFound, "invalid token must be discarded")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSession_Login_Success_PersistsTokenAndRefreshesSharedNotes(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		loginFn: func(_ context.Context, email, password string) (models.Token, error) {
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, "secret", password)
			return models.Token{AccessToken: "fresh-token", TokenType: "bearer"}, nil
		},
		listFn: func(_ context.Context, _ models.NoteFilter) ([]models.Note, error) {
			return []models.Note{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)

	err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated())
	token, err := sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, int64(1), serverAdapter.listCalls.Load(), "login triggers exactly one shared-notes fetch")
	assert.Equal(t, 2, svc.SharedNotesCount())
	assert.False(t, svc.Loading(), "loading must be reset after the transition")
}

func TestSession_Login_BadCredentials_LeavesNoToken(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, errors.New("401 unauthorized")
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)

	err := svc.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, ErrLoginFailed)

	assert.False(t, svc.IsAuthenticated())
	_, loadErr := sessions.Load()
	assert.ErrorIs(t, loadErr, store.ErrSessionNotFound)
	assert.Equal(t, int64(0), serverAdapter.meCalls.Load(), "failed login must not probe the session")
}

func TestSession_Login_WhoamiFails_DiscardsFreshToken(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		meFn: func(_ context.Context) (models.User, error) {
			return models.User{}, errors.New("backend down")
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)

	err := svc.Login(context.Background(), "user@example.com", "secret")
	require.ErrorIs(t, err, ErrLoginFailed)

	assert.False(t, svc.IsAuthenticated())
	_, loadErr := sessions.Load()
	assert.ErrorIs(t, loadErr, store.ErrSessionNotFound, "a failed login leaves the token unset")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSession_Register_Success_LogsInWithSameCredentials(t *testing.T) {
	var loginEmail, loginPassword string
	serverAdapter := &stubServerAdapter{
		loginFn: func(_ context.Context, email, password string) (models.Token, error) {
			loginEmail, loginPassword = email, password
			return models.Token{AccessToken: "tok", TokenType: "bearer"}, nil
		},
	}
	svc, _ := newTestSession(t, serverAdapter)

	err := svc.Register(context.Background(), "new@example.com", "secret")
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, int64(1), serverAdapter.registerCalls.Load())
	assert.Equal(t, "new@example.com", loginEmail)
	assert.Equal(t, "secret", loginPassword)
}

func TestSession_Register_Fails_NoLoginAttempt(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("409 conflict")
		},
	}
	svc, _ := newTestSession(t, serverAdapter)

	err := svc.Register(context.Background(), "taken@example.com", "secret")
	require.ErrorIs(t, err, ErrRegisterFailed)

	assert.False(t, svc.IsAuthenticated())
	assert.Equal(t, int64(0), serverAdapter.loginCalls.Load(), "registration failure must not attempt login")
}

func TestSession_Register_InvalidCredentials_NoNetworkCall(t *testing.T) {
	serverAdapter := &stubServerAdapter{}
	svc, _ := newTestSession(t, serverAdapter)

	err := svc.Register(context.Background(), "not-an-email", "secret")
	require.ErrorIs(t, err, ErrRegisterFailed)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	err = svc.Register(context.Background(), "new@example.com", "")
	require.ErrorIs(t, err, ErrRegisterFailed)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)

	assert.Equal(t, int64(0), serverAdapter.registerCalls.Load(), "rejected credentials never reach the backend")
	assert.False(t, svc.IsAuthenticated())
}

func TestSession_Register_Succeeds_LoginFails_OverallFailure(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, errors.New("backend down")
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)

	err := svc.Register(context.Background(), "new@example.com", "secret")
	require.ErrorIs(t, err, ErrLoginFailed)

	assert.Equal(t, int64(1), serverAdapter.registerCalls.Load(), "the account was created")
	assert.False(t, svc.IsAuthenticated(), "a created account with a failed sign-in stays anonymous")
	assert.Nil(t, svc.User())
	_, loadErr := sessions.Load()
	assert.ErrorIs(t, loadErr, store.ErrSessionNotFound, "no token may be left behind")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSession_Logout_ClearsEverything(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		listFn: func(_ context.Context, _ models.NoteFilter) ([]models.Note, error) {
			return []models.Note{{ID: 1}}, nil
		},
	}
	svc, sessions := newTestSession(t, serverAdapter)
	require.NoError(t, svc.Login(context.Background(), "user@example.com", "secret"))
	svc.OpenNotifications()

	callsBefore := serverAdapter.listCalls.Load() + serverAdapter.meCalls.Load() + serverAdapter.loginCalls.Load()
	svc.Logout()

	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.User())
	assert.Empty(t, svc.SharedNotes())
	assert.Zero(t, svc.SharedNotesCount())
	assert.False(t, svc.NotificationsOpen())
	_, err := sessions.Load()
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	callsAfter := serverAdapter.listCalls.Load() + serverAdapter.meCalls.Load() + serverAdapter.loginCalls.Load()
	assert.Equal(t, callsBefore, callsAfter, "logout performs no network calls")
}

// ── RefreshSharedNotes ───────────────────────────────────────────────────────

func TestSession_RefreshSharedNotes_Anonymous_NoNetworkCall(t *testing.T) {
	serverAdapter := &stubServerAdapter{}
	svc, _ := newTestSession(t, serverAdapter)

	svc.RefreshSharedNotes(context.Background())

	assert.Empty(t, svc.SharedNotes())
	assert.Equal(t, int64(0), serverAdapter.listCalls.Load())
}

func TestSession_RefreshSharedNotes_FetchFails_ResetsToEmptyKeepsAuth(t *testing.T) {
	fail := false
	serverAdapter := &stubServerAdapter{
		listFn: func(_ context.Context, _ models.NoteFilter) ([]models.Note, error) {
			if fail {
				return nil, errors.New("503 unavailable")
			}
			return []models.Note{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc, _ := newTestSession(t, serverAdapter)
	require.NoError(t, svc.Login(context.Background(), "user@example.com", "secret"))
	require.Equal(t, 2, svc.SharedNotesCount())

	fail = true
	svc.RefreshSharedNotes(context.Background())

	assert.True(t, svc.IsAuthenticated(), "refresh failure never changes auth state")
	assert.Empty(t, svc.SharedNotes())
}

func TestSession_RefreshSharedNotes_StaleResultAfterLogout_Discarded(t *testing.T) {
	serverAdapter := &stubServerAdapter{}
	svc, _ := newTestSession(t, serverAdapter)
	require.NoError(t, svc.Login(context.Background(), "user@example.com", "secret"))

	// Slow refresh in flight while the user logs out.
	release := make(chan struct{})
	inFlight := make(chan struct{})
	serverAdapter.listFn = func(_ context.Context, _ models.NoteFilter) ([]models.Note, error) {
		close(inFlight)
		<-release
		return []models.Note{{ID: 99, Title: "stale"}}, nil
	}

	done := make(chan struct{})
	go func() {
		svc.RefreshSharedNotes(context.Background())
		close(done)
	}()

	<-inFlight
	svc.Logout()
	close(release)
	<-done

	assert.Empty(t, svc.SharedNotes(), "a fetch started before logout must not repopulate the list")
	assert.Zero(t, svc.SharedNotesCount())
}

func TestSession_SharedNotesCount_MatchesList(t *testing.T) {
	serverAdapter := &stubServerAdapter{
		listFn: func(_ context.Context, _ models.NoteFilter) ([]models.Note, error) {
			return []models.Note{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	svc, _ := newTestSession(t, serverAdapter)
	require.NoError(t, svc.Login(context.Background(), "user@example.com", "secret"))

	assert.Equal(t, len(svc.SharedNotes()), svc.SharedNotesCount())
	assert.Equal(t, 3, svc.SharedNotesCount())
}

// ── Notifications overlay ────────────────────────────────────────────────────

func TestSession_NotificationsOverlay_Toggles(t *testing.T) {
	svc, _ := newTestSession(t, &stubServerAdapter{})

	assert.False(t, svc.NotificationsOpen())
	svc.OpenNotifications()
	assert.True(t, svc.NotificationsOpen())
	svc.CloseNotifications()
	assert.False(t, svc.NotificationsOpen())
}
