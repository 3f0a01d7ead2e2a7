package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/auth"
)

// MockTokenStore is a mock implementation of auth.TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID int64, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (int64, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func newTestAuthService(repo *MockUserRepository, store *MockTokenStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(repo, jwtService, store, zerolog.Nop())
}

func TestRegister_DefaultsRoleAndScoresProfile(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	var created *models.User
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
		created.ID = 7
	}).Return(nil)
	store.On("StoreRefreshToken", mock.Anything, mock.Anything, int64(7), "rahul@campus.edu", mock.Anything).Return(nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Rahul Verma",
		Email:    "  Rahul@Campus.EDU ",
		Password: "sekret-pass",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.Equal(t, "rahul@campus.edu", created.Email)
	assert.NotEqual(t, "sekret-pass", created.Password)
	// Name and email only: 2 of 20
	assert.Equal(t, 10, created.ProfileCompletion)

	assert.Equal(t, int64(7), resp.User.ID)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
}

func TestRegister_InvalidRole(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "x",
		Email:    "x@y.z",
		Password: "password1",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	hashed, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "rahul@campus.edu").Return(&models.User{
		ID:       7,
		Email:    "rahul@campus.edu",
		Password: hashed,
		Role:     models.RoleStudent,
	}, nil)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "rahul@campus.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	repo.On("GetByEmail", mock.Anything, "nobody@campus.edu").Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshToken_RotatesStoredToken(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	user := &models.User{ID: 7, Email: "rahul@campus.edu", Role: models.RoleStudent}
	store.On("GetRefreshToken", mock.Anything, "old-token").Return(int64(7), "rahul@campus.edu", nil)
	repo.On("GetByID", mock.Anything, int64(7)).Return(user, nil)
	store.On("DeleteRefreshToken", mock.Anything, "old-token").Return(nil)
	store.On("StoreRefreshToken", mock.Anything, mock.Anything, int64(7), "rahul@campus.edu", mock.Anything).Return(nil)

	tokens, err := svc.RefreshToken(context.Background(), "old-token")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, "old-token", tokens.RefreshToken)
	store.AssertExpectations(t)
}

func TestRefreshToken_Unknown(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	store.On("GetRefreshToken", mock.Anything, "missing").Return(int64(0), "", apperrors.ErrTokenNotFound)

	_, err := svc.RefreshToken(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestDeleteUser_AdminNotDeletable(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Role: models.RoleAdmin}, nil)

	err := svc.DeleteUser(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrAdminNotDeletable)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUser_Student(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{ID: 7, Role: models.RoleStudent}, nil)
	repo.On("Delete", mock.Anything, int64(7)).Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 7))
	repo.AssertExpectations(t)
}

func TestListUsers_UnknownRole(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc := newTestAuthService(repo, store)

	_, err := svc.ListUsers(context.Background(), "WIZARD")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
