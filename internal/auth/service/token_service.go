package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/dityarw/auth-service/internal/auth/service TokenCodec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind selects which signing key a token is verified against. Access
// and refresh tokens use separate keys so a compromise of one class cannot
// mint the other.
type TokenKind int

const (
	KindAccess TokenKind = iota
	KindRefresh
)

// VerifyStatus is the three-way outcome of token verification. Expiry is
// distinguished from all other failures because the caller's remediation
// differs (silent refresh vs. forced re-login).
type VerifyStatus int

const (
	TokenValid VerifyStatus = iota
	TokenExpired
	TokenInvalid
)

// AuthResult is the outcome of Verify. Subject is set when the token payload
// decoded, which includes the expired case; it is empty for TokenInvalid.
type AuthResult struct {
	Status    VerifyStatus
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenCodec interface {
	SignAccess(userID, role string) (string, error)
	SignRefresh(userID string) (string, error)
	Verify(tokenString string, kind TokenKind) AuthResult
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) SignAccess(userID, role string) (string, error) {
	return ts.sign(userID, role, ts.AccessTokenExpiry, ts.AccessTokenSecret)
}

func (ts *TokenService) SignRefresh(userID string) (string, error) {
	return ts.sign(userID, "", ts.RefreshTokenExpiry, ts.RefreshTokenSecret)
}

func (ts *TokenService) sign(userID, role string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Verify parses and validates tokenString against the key selected by kind.
// It fails closed: any failure other than a good signature on an expired
// token yields TokenInvalid.
func (ts *TokenService) Verify(tokenString string, kind TokenKind) AuthResult {
	secret := ts.AccessTokenSecret
	if kind == KindRefresh {
		secret = ts.RefreshTokenSecret
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AuthResult{
				Status:    TokenExpired,
				Subject:   claims.Subject,
				Role:      claims.Role,
				IssuedAt:  numericDateTime(claims.IssuedAt),
				ExpiresAt: numericDateTime(claims.ExpiresAt),
			}
		}
		return AuthResult{Status: TokenInvalid}
	}

	if !token.Valid || claims.Subject == "" {
		return AuthResult{Status: TokenInvalid}
	}

	return AuthResult{
		Status:    TokenValid,
		Subject:   claims.Subject,
		Role:      claims.Role,
		IssuedAt:  numericDateTime(claims.IssuedAt),
		ExpiresAt: numericDateTime(claims.ExpiresAt),
	}
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}

func numericDateTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
