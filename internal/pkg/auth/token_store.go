package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStore persists refresh tokens in Redis, keyed by opaque token ID.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID int64, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID int64, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

type refreshTokenData struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// RedisTokenStore implements TokenStore on top of the cache client.
type RedisTokenStore struct {
	cache *cache.Client
}

var _ TokenStore = (*RedisTokenStore)(nil)

// NewTokenStore creates a new Redis-backed token store.
func NewTokenStore(cache *cache.Client) *RedisTokenStore {
	return &RedisTokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token with TTL.
func (s *RedisTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID int64, email string, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenData{UserID: userID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves refresh token data. A missing, expired, or
// unreadable token yields apperrors.ErrTokenNotFound so the caller answers
// with an authentication failure rather than a server error.
func (s *RedisTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (int64, string, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return 0, "", apperrors.ErrTokenNotFound
	}

	var tokenData refreshTokenData
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return 0, "", apperrors.ErrTokenNotFound
	}
	return tokenData.UserID, tokenData.Email, nil
}

// DeleteRefreshToken removes a refresh token.
func (s *RedisTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
