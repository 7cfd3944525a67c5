package mocks

import (
	"context"

	"github.com/karthikc1125/simple-login/domain"
)

// MockSessionStore implements domain.SessionStore interface for testing
type MockSessionStore struct {
	PutFunc    func(ctx context.Context, token string, user *domain.SessionUser) error
	GetFunc    func(ctx context.Context, token string) (*domain.SessionUser, error)
	DeleteFunc func(ctx context.Context, token string) error
}

// NewMockSessionStore creates a new MockSessionStore with default behaviors
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Put stores a session
func (m *MockSessionStore) Put(ctx context.Context, token string, user *domain.SessionUser) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, token, user)
	}
	// Default behavior: success
	return nil
}

// Get looks up a session
func (m *MockSessionStore) Get(ctx context.Context, token string) (*domain.SessionUser, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Delete removes a session
func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionStore = (*MockSessionStore)(nil)
