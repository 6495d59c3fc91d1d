package dto

import (
	"time"

	"finance-tracker/internal/models"
)

// Auth Request DTOs

// SignUpRequest contains user registration data
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"fullName" validate:"max=200"`
}

// SignInRequest contains login credentials
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest changes the signed-in user's profile
type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"max=200"`
}

// Auth Response DTOs

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string               `json:"accessToken"`
	TokenType   string               `json:"tokenType"`
	ExpiresAt   time.Time            `json:"expiresAt"`
	User        *UserProfileResponse `json:"user,omitempty"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewUserProfileResponse(user *models.User) *UserProfileResponse {
	if user == nil {
		return nil
	}
	return &UserProfileResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
