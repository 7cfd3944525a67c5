package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikc1125/simple-login/domain"
)

func TestBlogRepositoryImpl(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	older := &domain.BlogPost{
		ID:         "post-1",
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "admin-1",
		AuthorName: "Admin",
		CreatedAt:  time.Now().Add(-time.Hour).UTC(),
	}
	newer := &domain.BlogPost{
		ID:         "post-2",
		Title:      "Second Post",
		Slug:       "second-post",
		Content:    "world",
		AuthorID:   "admin-1",
		AuthorName: "Admin",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "post-2", posts[0].ID, "newest post first")

	byID, err := repo.FindByID(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, "First Post", byID.Title)

	bySlug, err := repo.FindBySlug(ctx, "second-post")
	require.NoError(t, err)
	assert.Equal(t, "post-2", bySlug.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
