package dto

import "github.com/campushub/portal/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request. Role defaults to
// STUDENT when omitted; department, year, and skills seed the initial profile.
type RegisterRequest struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Password   string          `json:"password" binding:"required,min=8"`
	Role       models.RoleType `json:"role"`
	Department *string         `json:"department"`
	Year       *OptionalInt    `json:"year"`
	Skills     *StringList     `json:"skills"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// AuthUserResponse represents the slim user payload returned from auth endpoints
type AuthUserResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Role              models.RoleType `json:"role"`
	ProfileCompletion int             `json:"profileCompletion"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	User  AuthUserResponse `json:"user"`
	Token TokenResponse    `json:"token"`
}
