package repositories

import (
	"context"
	"sync"

	"github.com/karthikc1125/simple-login/domain"
)

// MemoryOTPStore implements domain.OTPStore with a mutex-guarded map.
// Codes are volatile: a process restart drops all pending resets. Put
// overwrites any prior record for the email, keeping at most one live
// code per address.
type MemoryOTPStore struct {
	mu    sync.RWMutex
	codes map[string]domain.OTPRecord
}

// NewMemoryOTPStore creates a new in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		codes: make(map[string]domain.OTPRecord),
	}
}

// Put implements domain.OTPStore
func (s *MemoryOTPStore) Put(ctx context.Context, email string, record *domain.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = *record
	return nil
}

// Get implements domain.OTPStore
func (s *MemoryOTPStore) Get(ctx context.Context, email string) (*domain.OTPRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.codes[email]
	if !ok {
		return nil, domain.ErrOTPNotRequested
	}
	return &record, nil
}

// Delete implements domain.OTPStore
func (s *MemoryOTPStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}

var _ domain.OTPStore = (*MemoryOTPStore)(nil)
