package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikc1125/simple-login/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestRedisSessionStore_PutGetDelete(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisSessionStore(client, 0)
	ctx := context.Background()

	user := &domain.SessionUser{ID: "u1", Email: "a@x.com", Name: "Alice", Role: domain.RoleAdmin}
	require.NoError(t, store.Put(ctx, "tok1", user))

	got, err := store.Get(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "tok1"))
	_, err = store.Get(ctx, "tok1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, "tok1"))
}

func TestRedisSessionStore_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisSessionStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok1", &domain.SessionUser{ID: "u1"}))

	ttl := client.TTL(ctx, "session:tok1").Val()
	assert.Greater(t, ttl, time.Duration(0))

	mr.FastForward(2 * time.Hour)
	_, err := store.Get(ctx, "tok1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisSessionStore_NoExpiryByDefault(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisSessionStore(client, 0)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok1", &domain.SessionUser{ID: "u1"}))

	ttl := client.TTL(ctx, "session:tok1").Val()
	assert.Equal(t, time.Duration(-1), ttl)
}
