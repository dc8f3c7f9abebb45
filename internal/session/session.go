package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// Store persists the admin session between invocations of the same editing
// session: the bearer token plus the authenticated flag, cleared on logout.
type Store interface {
	Save(token string)
	Load() (token string, authenticated bool)
	Clear()
}

type sessionState struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token"`
}

type FileStore struct {
	path string
	log  logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Save(token string) {
	data, _ := json.Marshal(sessionState{Authenticated: true, Token: token})
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Warn("session: failed to create directory", zap.Error(err))
		return
	}
	// Token material: owner-only permissions.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Warn("session: failed to persist session", zap.Error(err))
	}
}

func (s *FileStore) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn("session: stored session is corrupt", zap.Error(err))
		return "", false
	}
	return state.Token, state.Authenticated && state.Token != ""
}

func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("session: failed to clear session", zap.Error(err))
	}
}

// MemoryStore backs tests and one-shot commands that should not leave a
// session behind.
type MemoryStore struct {
	token         string
	authenticated bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string) {
	s.token = token
	s.authenticated = true
}

func (s *MemoryStore) Load() (string, bool) {
	return s.token, s.authenticated
}

func (s *MemoryStore) Clear() {
	s.token = ""
	s.authenticated = false
}
