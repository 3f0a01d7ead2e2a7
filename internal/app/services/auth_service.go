package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/auth"
)

// UserRepository is the persistence surface the auth and profile services need.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateProfileCompletion(ctx context.Context, userID int64, score int) error
	Delete(ctx context.Context, id int64) error
}

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStore
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStore, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// Register creates a new user account and returns an authenticated session.
// Email is normalized to lowercase; role defaults to STUDENT when omitted.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "role must be one of STUDENT, FACULTY, ADMIN")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		Role:       role,
		Department: req.Department,
	}
	if req.Year != nil {
		user.Year = req.Year.Value
	}
	if req.Skills != nil {
		user.Skills = []string(*req.Skills)
	}
	user.ProfileCompletion = user.CalculateProfileCompletion()

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.buildAuthResponse(ctx, user)
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Accounts created before the completion column was populated carry a
	// zero score; refresh it on login.
	if score := user.CalculateProfileCompletion(); score != user.ProfileCompletion {
		user.ProfileCompletion = score
		if err := s.userRepo.UpdateProfileCompletion(ctx, user.ID, score); err != nil {
			s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to refresh profile completion on login")
		}
	}

	return s.buildAuthResponse(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The used token is rotated out of the store.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, _, err := s.tokenStore.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, refreshToken); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to delete rotated refresh token")
	}

	return s.issueTokens(ctx, user)
}

// GetCurrentUser returns the authenticated user's record
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns all users, optionally filtered by role
func (s *AuthService) ListUsers(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	if role != "" {
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		return s.userRepo.GetByRole(ctx, role)
	}
	return s.userRepo.GetAll(ctx)
}

// DeleteUser removes a user account. Admin accounts cannot be deleted.
func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return apperrors.ErrAdminNotDeletable
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiresIn := s.jwtService.NewRefreshToken()
	ttl := time.Duration(refreshExpiresIn) * time.Second
	if err := s.tokenStore.StoreRefreshToken(ctx, refreshToken, user.ID, user.Email, ttl); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

func (s *AuthService) buildAuthResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User: dto.AuthUserResponse{
			ID:                user.ID,
			Name:              user.Name,
			Email:             user.Email,
			Role:              user.Role,
			ProfileCompletion: user.ProfileCompletion,
		},
		Token: *tokens,
	}, nil
}
