package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// ErrNoSession is returned when no session has been saved yet.
var ErrNoSession = errors.New("not signed in")

// SessionStore persists the session as a JSON file and hands it out to
// whoever needs it. It is created once at startup and injected
// explicitly; sign-in and sign-out update it, everything else only
// reads. It implements api.TokenSource.
type SessionStore struct {
	mu      sync.Mutex
	path    string
	session *models.Session
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the session file into memory. A missing file yields
// ErrNoSession.
func (s *SessionStore) Load() (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("reading session file: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("parsing session file: %w", err)
	}
	if session.Token == "" {
		return models.Session{}, ErrNoSession
	}
	s.session = &session
	return session, nil
}

// Save writes the session to disk and keeps it in memory.
func (s *SessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	s.session = &session
	return nil
}

// Clear signs out: the file is removed and the in-memory copy dropped.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// SetUser replaces the stored user identity, keeping the token. Used
// after a profile save so the session reflects the server's copy.
func (s *SessionStore) SetUser(user models.SessionUser) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	session := *s.session
	s.mu.Unlock()

	session.User = user
	return s.Save(session)
}

// Token returns the current bearer token, or "" when signed out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// User returns the current identity and whether a session exists.
func (s *SessionStore) User() (models.SessionUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return models.SessionUser{}, false
	}
	return s.session.User, true
}
