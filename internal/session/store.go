package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store owns the opaque session token issued by the remote service. Absence of
// a token always means "unauthenticated"; no component inspects the token's
// contents. Writes are whole-value replacements, last writer wins.
type Store interface {
	// Has reports whether a token is currently stored.
	Has() bool
	// Token returns the stored token, if any.
	Token() (string, bool)
	// Set replaces the stored token.
	Set(token string) error
	// Clear removes the token. Idempotent.
	Clear() error
}

// FileStore persists the token in a single file so the session survives
// gateway restarts, the way the browser client kept it in localStorage.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Has() bool {
	_, ok := s.Token()
	return ok
}

func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore keeps the token in memory only. Used by tests and available as
// an alternative backing behind the same interface.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Has() bool {
	_, ok := s.Token()
	return ok
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
