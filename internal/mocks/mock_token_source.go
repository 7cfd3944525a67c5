package mocks

import (
	"fmt"
	"sync/atomic"

	"github.com/karthikc1125/simple-login/domain"
)

// MockTokenSource implements domain.TokenSource interface for testing
type MockTokenSource struct {
	MintFunc func() (string, error)
	counter  atomic.Int64
}

// NewMockTokenSource creates a new MockTokenSource with default behaviors
func NewMockTokenSource() *MockTokenSource {
	return &MockTokenSource{}
}

// Mint produces a session token
func (m *MockTokenSource) Mint() (string, error) {
	if m.MintFunc != nil {
		return m.MintFunc()
	}
	// Default behavior: distinct tokens per call
	return fmt.Sprintf("token-%d", m.counter.Add(1)), nil
}

// Compile-time interface compliance verification
var _ domain.TokenSource = (*MockTokenSource)(nil)
