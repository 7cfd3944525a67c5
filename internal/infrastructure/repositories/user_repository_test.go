package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikc1125/simple-login/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBCity{}, &DBBlogPost{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testUser() *domain.User {
	return &domain.User{
		ID:           "11111111-1111-4111-8111-111111111111",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
		Role:         domain.RoleUser,
	}
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	byEmail, err := repo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, testUser().ID, byEmail.ID)
	assert.Equal(t, "hashed_password", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, testUser().ID)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "missing-id")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryImpl_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	dup := testUser()
	dup.ID = "22222222-2222-4222-8222-222222222222"
	assert.Error(t, repo.Create(ctx, dup), "unique index on email must reject duplicates")

	var count int64
	db.Model(&DBUser{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUserRepositoryImpl_UpdatePasswordByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	require.NoError(t, repo.UpdatePasswordByEmail(ctx, "test@example.com", "hashed_new"))

	updated, err := repo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed_new", updated.PasswordHash)

	err = repo.UpdatePasswordByEmail(ctx, "nobody@example.com", "hashed_new")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryImpl_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))
	require.NoError(t, repo.Delete(ctx, testUser().ID))

	_, err := repo.FindByID(ctx, testUser().ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// The email is free for registration again.
	require.NoError(t, repo.Create(ctx, testUser()))

	// Deleting an absent row is not an error.
	assert.NoError(t, repo.Delete(ctx, "missing-id"))
}
