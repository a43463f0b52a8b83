package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrSessionNotFound is returned by Load when no session has been persisted.
var ErrSessionNotFound = errors.New("local session not found")

type fileSessionStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	session *localSession
}

type localSession struct {
	Token string    `json:"token"`
	At    time.Time `json:"at"`
}

// NewSessionStore opens the session file at path, creating nothing until the
// first Save. The special path ":memory:" keeps the session in process
// memory only, which is what the tests use.
//
// Returns an error if an existing session file cannot be read or decoded.
func NewSessionStore(path string) (SessionStore, error) {
	if path == "" {
		path = ":memory:"
	}

	inMemory := path == ":memory:" || path == "memory"
	s := &fileSessionStore{path: path, inMemory: inMemory}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSessionStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var sess localSession
	if err = json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}

	if sess.Token != "" {
		s.session = &sess
	}

	return nil
}

func (s *fileSessionStore) persist() error {
	if s.inMemory {
		return nil
	}

	if s.session == nil {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// 0600: the file holds a live credential.
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Save implements [SessionStore].
func (s *fileSessionStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &localSession{Token: token, At: time.Now().UTC()}
	return s.persist()
}

// Load implements [SessionStore].
func (s *fileSessionStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil || s.session.Token == "" {
		return "", ErrSessionNotFound
	}
	return s.session.Token, nil
}

// Clear implements [SessionStore].
func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.persist()
}
