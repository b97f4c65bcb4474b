package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/mail"

	"github.com/dityarw/auth-service/internal/auth/domain"
	"github.com/dityarw/auth-service/internal/auth/dto"
	autherror "github.com/dityarw/auth-service/internal/errors"
	"github.com/dityarw/auth-service/internal/logging"
	authconstant "github.com/dityarw/auth-service/pkg/constant"
)

// UserService orchestrates the token lifecycle: it issues paired tokens on
// login, validates refresh tokens against the store, and revokes on logout.
type UserService struct {
	store  domain.CredentialStore
	tokens TokenCodec
}

func NewUserService(store domain.CredentialStore, tokens TokenCodec) *UserService {
	return &UserService{store: store, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.PublicUser, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	user, err := s.store.Register(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("user registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// Login authenticates usernameOrEmail + password and mints a fresh token
// pair. An unknown identifier and a wrong password fail identically with
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.store.FindByCredential(ctx, input.UsernameOrEmail)
	if err != nil {
		return nil, err
	}

	if user == nil || !s.store.VerifyPassword(input.Password, user.PasswordHash) {
		_ = s.store.RecordLoginAttempt(ctx, input.UsernameOrEmail, false)
		l.Warn("login failed", "reason", "invalid credentials")
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.SignAccess(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.SignRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.AddRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	if err := s.store.RecordLoginAttempt(ctx, input.UsernameOrEmail, true); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

// Refresh exchanges a valid, still-registered refresh token for a new access
// token. The refresh token itself is not rotated; it stays valid until its
// own expiry, eviction, or explicit logout.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.RefreshResponse, error) {
	res := s.tokens.Verify(input.RefreshToken, KindRefresh)

	switch res.Status {
	case TokenExpired:
		return nil, autherror.ErrRefreshTokenExpired
	case TokenInvalid:
		return nil, autherror.ErrRefreshTokenInvalid
	}

	registered, err := s.store.HasRefreshToken(ctx, res.Subject, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !registered {
		// Cryptographically sound but logged out or rotated away.
		logging.FromContext(ctx).Warn("refresh rejected", "reason", "revoked", "user_id", res.Subject)
		return nil, autherror.ErrRefreshTokenRevoked
	}

	user, err := s.store.FindByID(ctx, res.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	accessToken, err := s.tokens.SignAccess(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout removes the refresh token from its subject's registry. It is
// idempotent and never reports whether the token was valid.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	res := s.tokens.Verify(refreshToken, KindRefresh)
	if res.Status == TokenInvalid || res.Subject == "" {
		return nil
	}

	return s.store.RemoveRefreshToken(ctx, res.Subject, refreshToken)
}

// ForceLogout revokes every refresh token a user holds. No-op for unknown
// users.
func (s *UserService) ForceLogout(ctx context.Context, userID string) error {
	logging.FromContext(ctx).Info("force logout", "user_id", userID)
	return s.store.RemoveAllRefreshTokens(ctx, userID)
}

// UpdateUserRole reassigns a user's role. Roles outside the known set are
// rejected before the store is touched.
func (s *UserService) UpdateUserRole(ctx context.Context, userID string, input dto.UpdateRoleInput) (*domain.PublicUser, error) {
	switch input.Role {
	case authconstant.DefaultUserRole, authconstant.AdminRole:
	default:
		return nil, autherror.ErrInvalidRole
	}

	if err := s.store.UpdateRole(ctx, userID, input.Role); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("role updated", "user_id", userID, "role", input.Role)

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	pub := user.Public()

	return &pub, nil
}

// EnsureAdmin registers an admin account. Meant for startup seeding so the
// admin endpoints are reachable on a fresh, empty store; the credentials go
// through the same validation as any registration.
func (s *UserService) EnsureAdmin(ctx context.Context, input dto.RegisterInput) error {
	user, err := s.Register(ctx, input)
	if err != nil {
		return err
	}

	return s.store.UpdateRole(ctx, user.ID, authconstant.AdminRole)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	return s.store.ListAll(ctx)
}

// GetSessions renders the user's active refresh tokens as session views.
// Tokens are never returned verbatim, only their SHA-256 digest.
func (s *UserService) GetSessions(ctx context.Context, userID string) ([]dto.SessionOutput, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	tokens, err := s.store.GetRefreshTokens(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions := make([]dto.SessionOutput, 0, len(tokens))
	for _, t := range tokens {
		res := s.tokens.Verify(t, KindRefresh)
		if res.Status == TokenInvalid {
			continue
		}
		sessions = append(sessions, dto.SessionOutput{
			TokenDigest: sha256Hex(t),
			IssuedAt:    res.IssuedAt,
			ExpiresAt:   res.ExpiresAt,
		})
	}

	return sessions, nil
}

func validateRegisterInput(input dto.RegisterInput) error {
	if len(input.Username) < authconstant.MinUsernameLength {
		return autherror.ErrInvalidUsername
	}
	if len(input.Password) < authconstant.MinPasswordLength {
		return autherror.ErrInvalidPassword
	}
	if addr, err := mail.ParseAddress(input.Email); err != nil || addr.Address != input.Email {
		return autherror.ErrInvalidEmail
	}

	return nil
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
