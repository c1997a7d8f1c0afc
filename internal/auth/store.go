package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("admin session not found")

// SessionStore хранит живые admin-сессии по jti; удаление записи = отзыв.
// Реализации остаются stateless и opaque (production — Redis).
type SessionStore interface {
	Create(ctx context.Context, jti, userID string, ttl time.Duration) error
	Get(ctx context.Context, jti string) (userID string, err error)
	Delete(ctx context.Context, jti string) error
}

// RedisSessionStore — production-хранилище admin-сессий в Redis с TTL.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) key(jti string) string { return "adminsession:" + jti }

func (s *RedisSessionStore) Create(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, s.key(jti), userID, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, jti string) (string, error) {
	userID, err := s.rdb.Get(ctx, s.key(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", err
	}
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, s.key(jti)).Err()
}
