package mocks

import (
	"context"

	"github.com/karthikc1125/simple-login/domain"
)

// MockOTPStore implements domain.OTPStore interface for testing
type MockOTPStore struct {
	PutFunc    func(ctx context.Context, email string, record *domain.OTPRecord) error
	GetFunc    func(ctx context.Context, email string) (*domain.OTPRecord, error)
	DeleteFunc func(ctx context.Context, email string) error
}

// NewMockOTPStore creates a new MockOTPStore with default behaviors
func NewMockOTPStore() *MockOTPStore {
	return &MockOTPStore{}
}

// Put stores an OTP record
func (m *MockOTPStore) Put(ctx context.Context, email string, record *domain.OTPRecord) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, email, record)
	}
	// Default behavior: success
	return nil
}

// Get looks up an OTP record
func (m *MockOTPStore) Get(ctx context.Context, email string) (*domain.OTPRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	// Default behavior: no record
	return nil, domain.ErrOTPNotRequested
}

// Delete removes an OTP record
func (m *MockOTPStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPStore = (*MockOTPStore)(nil)
