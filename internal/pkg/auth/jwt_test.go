package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Email: "rahul@campus.edu", Role: models.RoleStudent}

	token, expiresIn, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "rahul@campus.edu", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 7, Email: "rahul@campus.edu", Role: models.RoleStudent}

	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Email: "rahul@campus.edu", Role: models.RoleStudent}
	token, _, err := testService(time.Hour).GenerateAccessToken(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNewRefreshToken_Unique(t *testing.T) {
	svc := testService(time.Hour)
	a, expiresIn := svc.NewRefreshToken()
	b, _ := svc.NewRefreshToken()

	assert.NotEqual(t, a, b)
	assert.Equal(t, int(24*time.Hour.Seconds()), expiresIn)
}
