package mocks

import (
	"context"

	"github.com/karthikc1125/simple-login/domain"
)

// MockBlogRepository implements domain.BlogRepository interface for testing
type MockBlogRepository struct {
	ListFunc       func(ctx context.Context) ([]*domain.BlogPost, error)
	FindByIDFunc   func(ctx context.Context, id string) (*domain.BlogPost, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.BlogPost, error)
	CreateFunc     func(ctx context.Context, post *domain.BlogPost) error
}

// NewMockBlogRepository creates a new MockBlogRepository with default behaviors
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

// List returns all posts
func (m *MockBlogRepository) List(ctx context.Context) ([]*domain.BlogPost, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// FindByID finds a post by ID
func (m *MockBlogRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrPostNotFound
}

// FindBySlug finds a post by slug
func (m *MockBlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	// Default behavior: not found
	return nil, domain.ErrPostNotFound
}

// Create stores a new post
func (m *MockBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.BlogRepository = (*MockBlogRepository)(nil)
