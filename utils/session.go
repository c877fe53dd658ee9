package utils

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"projecthub/config"
)

// SessionStore holds the server-side session table: opaque token -> user id.
// Tokens expire after the configured TTL.
type SessionStore interface {
	// Create issues a fresh token for userID.
	Create(ctx context.Context, userID uint) (string, error)
	// Get resolves a token to a user id; ok is false for unknown or expired
	// tokens.
	Get(ctx context.Context, token string) (userID uint, ok bool)
	// Delete ends the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

// NewSessionStore picks the Redis-backed store when Redis is enabled in config,
// the in-process store otherwise.
func NewSessionStore(cfg config.RedisConfig, ttl time.Duration) SessionStore {
	if cfg.Enabled {
		return NewRedisSessionStore(cfg, ttl)
	}
	return NewMemorySessionStore(ttl)
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory. Fine for a single
// instance; use Redis when running more than one.
type MemorySessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memorySession
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemorySessionStore) Create(_ context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (uint, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, false
	}
	return sess.userID, true
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// RedisSessionStore keeps sessions in Redis so they survive restarts and are
// shared across instances.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(cfg config.RedisConfig, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: ttl,
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	err := s.client.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (uint, bool) {
	value, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return 0, false
	}
	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	err := s.client.Del(ctx, sessionKey(token)).Err()
	if err != nil && err != redis.Nil {
		return err
	}
	return nil
}
