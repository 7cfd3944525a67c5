package mocks

import (
	"context"

	"github.com/karthikc1125/simple-login/domain"
)

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendOTPFunc func(ctx context.Context, email, code string) error
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendOTP delivers a password-reset code
func (m *MockMailer) SendOTP(ctx context.Context, email, code string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
