package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karthikc1125/simple-login/domain"
)

// RedisSessionStore implements domain.SessionStore using Redis. It is an
// opt-in alternative to MemorySessionStore for deployments that want
// sessions to survive process restarts. A zero TTL stores sessions
// without expiry, matching the in-memory behavior.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore creates a new Redis-backed session store
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

// Put implements domain.SessionStore
func (s *RedisSessionStore) Put(ctx context.Context, token string, user *domain.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, s.prefix+token, data, s.ttl).Err()
}

// Get implements domain.SessionStore
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.SessionUser, error) {
	data, err := s.client.Get(ctx, s.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var user domain.SessionUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &user, nil
}

// Delete implements domain.SessionStore
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.prefix+token).Err()
}

var _ domain.SessionStore = (*RedisSessionStore)(nil)
