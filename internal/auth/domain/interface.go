package domain

//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/dityarw/auth-service/internal/auth/domain CredentialStore

import "context"

// CredentialStore is the per-user credential and refresh-token registry.
// Lookups return (nil, nil) when no record matches.
type CredentialStore interface {
	Register(ctx context.Context, username, email, password string) (*PublicUser, error)
	FindByCredential(ctx context.Context, usernameOrEmail string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	VerifyPassword(plain, digest string) bool
	UpdateRole(ctx context.Context, userID, role string) error

	AddRefreshToken(ctx context.Context, userID, token string) error
	RemoveRefreshToken(ctx context.Context, userID, token string) error
	RemoveAllRefreshTokens(ctx context.Context, userID string) error
	HasRefreshToken(ctx context.Context, userID, token string) (bool, error)
	GetRefreshTokens(ctx context.Context, userID string) ([]string, error)

	ListAll(ctx context.Context) ([]PublicUser, error)
	RecordLoginAttempt(ctx context.Context, identifier string, success bool) error
}
