package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mywallet/internal/cache"
	apperrors "mywallet/internal/errors"
)

const sessionKeyPrefix = "session:"

// SessionRegistry maps opaque bearer tokens to user identities. A session
// is created at login, resolved on every authenticated request, and
// destroyed at logout. Logins never invalidate earlier sessions, so one
// user may hold several valid tokens at once.
type SessionRegistry interface {
	Save(ctx context.Context, token string, userID uint) error
	Resolve(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}

// RedisSessionRegistry stores sessions in Redis under a key prefix.
type RedisSessionRegistry struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure RedisSessionRegistry implements SessionRegistry
var _ SessionRegistry = (*RedisSessionRegistry)(nil)

// NewRedisSessionRegistry creates a registry on top of the given Redis
// client. A zero ttl keeps sessions valid until explicit logout.
func NewRedisSessionRegistry(cache *cache.Client, ttl time.Duration) *RedisSessionRegistry {
	return &RedisSessionRegistry{cache: cache, ttl: ttl}
}

// Save records a token → userID binding.
func (r *RedisSessionRegistry) Save(ctx context.Context, token string, userID uint) error {
	key := sessionKeyPrefix + token
	value := []byte(strconv.FormatUint(uint64(userID), 10))
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Resolve returns the user ID bound to token, or ErrSessionNotFound.
func (r *RedisSessionRegistry) Resolve(ctx context.Context, token string) (uint, error) {
	key := sessionKeyPrefix + token
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	if data == nil {
		return 0, apperrors.ErrSessionNotFound
	}
	userID, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value for token: %w", err)
	}
	return uint(userID), nil
}

// Delete removes at most one session. Deleting an absent token is a
// harmless no-op, which makes logout idempotent.
func (r *RedisSessionRegistry) Delete(ctx context.Context, token string) error {
	if err := r.cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
