package mocks

import (
	"context"

	"github.com/karthikc1125/simple-login/domain"
)

// MockCityRepository implements domain.CityRepository interface for testing
type MockCityRepository struct {
	ListFunc     func(ctx context.Context) ([]*domain.City, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.City, error)
}

// NewMockCityRepository creates a new MockCityRepository with default behaviors
func NewMockCityRepository() *MockCityRepository {
	return &MockCityRepository{}
}

// List returns all cities
func (m *MockCityRepository) List(ctx context.Context) ([]*domain.City, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// FindByID finds a city by ID
func (m *MockCityRepository) FindByID(ctx context.Context, id string) (*domain.City, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCityNotFound
}

// Compile-time interface compliance verification
var _ domain.CityRepository = (*MockCityRepository)(nil)
