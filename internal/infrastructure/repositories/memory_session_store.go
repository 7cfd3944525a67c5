package repositories

import (
	"context"
	"sync"

	"github.com/karthikc1125/simple-login/domain"
)

// MemorySessionStore implements domain.SessionStore with a mutex-guarded
// map. Sessions live until explicit logout or process exit.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.SessionUser
}

// NewMemorySessionStore creates a new in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domain.SessionUser),
	}
}

// Put implements domain.SessionStore
func (s *MemorySessionStore) Put(ctx context.Context, token string, user *domain.SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = *user
	return nil
}

// Get implements domain.SessionStore
func (s *MemorySessionStore) Get(ctx context.Context, token string) (*domain.SessionUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &user, nil
}

// Delete implements domain.SessionStore. Deleting an absent token is not
// an error.
func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ domain.SessionStore = (*MemorySessionStore)(nil)
