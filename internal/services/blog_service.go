package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karthikc1125/simple-login/domain"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

// BlogServiceImpl implements domain.BlogService
type BlogServiceImpl struct {
	repo domain.BlogRepository
}

// NewBlogService creates a new blog service
func NewBlogService(repo domain.BlogRepository) domain.BlogService {
	return &BlogServiceImpl{repo: repo}
}

// ListPosts implements domain.BlogService
func (s *BlogServiceImpl) ListPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.List(ctx)
}

// GetPost implements domain.BlogService. The argument may be a post ID or
// a slug; ID lookup wins when both would match.
func (s *BlogServiceImpl) GetPost(ctx context.Context, idOrSlug string) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, idOrSlug)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, domain.ErrPostNotFound) {
		return nil, err
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

// CreatePost implements domain.BlogService
func (s *BlogServiceImpl) CreatePost(ctx context.Context, title, content string, author *domain.SessionUser) (*domain.BlogPost, error) {
	post := &domain.BlogPost{
		ID:         uuid.NewString(),
		Title:      title,
		Slug:       Slugify(title),
		Content:    content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Slugify lowercases the title, collapses whitespace to hyphens, and
// strips everything outside [a-z0-9-].
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.Join(strings.Fields(slug), "-")
	return slugStrip.ReplaceAllString(slug, "")
}
