package errors

import (
	"errors"
)

// Closed set of error kinds surfaced by the auth core. Handlers map these to
// HTTP status codes at the boundary; the core itself never sees status codes.
var (
	ErrInvalidUsername     = errors.New("username must be at least 3 characters")
	ErrInvalidPassword     = errors.New("password must be at least 6 characters")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidRole         = errors.New("unknown role")
	ErrUserAlreadyExists   = errors.New("username or email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrRefreshTokenInvalid = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)
