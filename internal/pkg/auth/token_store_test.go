package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/cache"
)

// A nil cache client behaves like a miss on every read, so the store can be
// exercised without a running redis.

func TestGetRefreshToken_Missing(t *testing.T) {
	store := NewTokenStore(nil)

	userID, email, err := store.GetRefreshToken(context.Background(), "no-such-token")

	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	assert.Zero(t, userID)
	assert.Empty(t, email)
}

func TestGetRefreshToken_UnreachableRedis(t *testing.T) {
	store := NewTokenStore(cache.New("127.0.0.1:1", "", 0))

	_, _, err := store.GetRefreshToken(context.Background(), "any-token")

	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestStoreRefreshToken_NilCache(t *testing.T) {
	store := NewTokenStore(nil)

	err := store.StoreRefreshToken(context.Background(), "token-id", 7, "user@campus.edu", time.Hour)

	assert.NoError(t, err)
}
