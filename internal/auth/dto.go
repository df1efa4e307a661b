package auth

import (
	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
)

// RegisterRequest captures a new account submission.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Phone    string `json:"phone" validate:"max=32"`
	Province string `json:"province" validate:"max=80"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest rotates an expired access token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserSummary is the account shape returned by auth endpoints.
type UserSummary struct {
	ID         uuid.UUID      `json:"id"`
	Email      string         `json:"email"`
	FullName   string         `json:"full_name"`
	Role       enums.UserRole `json:"role"`
	BusinessID *uuid.UUID     `json:"business_id,omitempty"`
}

// TokenPair bundles the credentials returned on login/refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse is returned by Login and Register.
type LoginResponse struct {
	User   UserSummary `json:"user"`
	Tokens TokenPair   `json:"tokens"`
}
