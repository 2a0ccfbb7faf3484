package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenPair is the upstream access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore holds the token pair for one session. The pair is mutated only
// by login and by the refresh completion step.
type TokenStore interface {
	Get(ctx context.Context) (TokenPair, error)
	Set(ctx context.Context, pair TokenPair) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps the pair in process memory. Useful for tests and
// single-user tools.
type MemoryTokenStore struct {
	mu   sync.RWMutex
	pair TokenPair
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get(ctx context.Context) (TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair, nil
}

func (s *MemoryTokenStore) Set(ctx context.Context, pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = TokenPair{}
	return nil
}

const sessionKeyPrefix = "apiSession:"

// RedisTokenStore persists the pair in Redis under the gateway session ID, so
// every request in a session shares one pair across gateway instances.
type RedisTokenStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

func NewRedisTokenStore(client *redis.Client, sessionID string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, sessionID: sessionID, ttl: ttl}
}

func (s *RedisTokenStore) key() string {
	return sessionKeyPrefix + s.sessionID
}

func (s *RedisTokenStore) Get(ctx context.Context) (TokenPair, error) {
	data, err := s.client.Get(ctx, s.key()).Result()
	if err == redis.Nil {
		return TokenPair{}, nil
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to load session tokens: %w", err)
	}
	var pair TokenPair
	if err := json.Unmarshal([]byte(data), &pair); err != nil {
		return TokenPair{}, fmt.Errorf("failed to unmarshal session tokens: %w", err)
	}
	return pair, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, pair TokenPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to marshal session tokens: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session tokens: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}
