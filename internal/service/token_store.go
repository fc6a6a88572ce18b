package service

import (
	"context"
	"fmt"
	"time"

	"hospitrack/pkg/jwt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// TokenStore whitelists issued token ids. A token that is not in the store
// is treated as revoked even if its signature is still valid.
type TokenStore interface {
	Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error
}

func tokenKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, userID.String(), tokenID)
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err()
}

type memoryTokenStore struct {
	cache *gocache.Cache
}

func NewMemoryTokenStore(cache *gocache.Cache) TokenStore {
	return &memoryTokenStore{cache: cache}
}

func (s *memoryTokenStore) Store(_ context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.cache.Set(tokenKey(tokenType, userID, tokenID), "valid", ttl)
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	_, found := s.cache.Get(tokenKey(tokenType, userID, tokenID))
	return found, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	s.cache.Delete(tokenKey(tokenType, userID, tokenID))
	return nil
}
