package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikc1125/simple-login/domain"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	user := &domain.SessionUser{ID: "u1", Email: "a@x.com", Name: "Alice", Role: domain.RoleUser}

	require.NoError(t, store.Put(ctx, "tok1", user))

	got, err := store.Get(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	// The stored value is a copy: mutating the result must not affect
	// later lookups.
	got.Name = "Mallory"
	again, err := store.Get(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "tok1"))
	_, err = store.Get(ctx, "tok1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, "tok1"))
}

func TestMemorySessionStore_Concurrent(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("tok-%d", i)
			user := &domain.SessionUser{ID: fmt.Sprintf("u%d", i)}
			_ = store.Put(ctx, token, user)
			_, _ = store.Get(ctx, token)
			_ = store.Delete(ctx, token)
		}(i)
	}
	wg.Wait()
}

func TestMemoryOTPStore(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrOTPNotRequested)

	first := &domain.OTPRecord{Code: "111111", ExpiresAt: time.Now().Add(10 * time.Minute)}
	require.NoError(t, store.Put(ctx, "a@x.com", first))

	// A second request overwrites the first: one live code per email.
	second := &domain.OTPRecord{Code: "222222", ExpiresAt: time.Now().Add(10 * time.Minute)}
	require.NoError(t, store.Put(ctx, "a@x.com", second))

	got, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)

	require.NoError(t, store.Delete(ctx, "a@x.com"))
	_, err = store.Get(ctx, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrOTPNotRequested)
}
