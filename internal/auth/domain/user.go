package domain

import "time"

// User is the full credential record held by the store. PasswordHash is never
// exposed outside the store/service layers; RefreshTokens holds the currently
// valid refresh tokens, oldest first.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	Role          string
	RefreshTokens []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicUser is the projection of a User safe to return to clients.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Identity is the resolved subject of a verified access token, attached to
// the request context by the auth guard.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginAttempt struct {
	Identifier  string
	AttemptTime time.Time
	Successful  bool
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}
