package dto

import (
	"time"

	"github.com/dityarw/auth-service/internal/auth/domain"
)

type TokenResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         domain.PublicUser `json:"user"`
}

type UpdateRoleInput struct {
	Role string `json:"role"`
}

type SessionOutput struct {
	TokenDigest string    `json:"token_digest"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
