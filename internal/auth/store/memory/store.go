// Package memory implements the credential store as process-lifetime
// in-memory state. A single RWMutex serializes all mutations; password
// hashing never runs while the lock is held.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dityarw/auth-service/internal/auth/domain"
	autherror "github.com/dityarw/auth-service/internal/errors"
	"github.com/dityarw/auth-service/internal/hash"
	authconstant "github.com/dityarw/auth-service/pkg/constant"
	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users      map[string]*domain.User // keyed by user id
	byUsername map[string]string       // username -> user id
	byEmail    map[string]string       // email -> user id
	order      []string                // user ids in insertion order

	attempts []domain.LoginAttempt

	maxRefreshTokens int
}

func NewStore(maxRefreshTokens int) *Store {
	if maxRefreshTokens <= 0 {
		maxRefreshTokens = authconstant.DefaultMaxActiveRefreshTokens
	}

	return &Store{
		users:            make(map[string]*domain.User),
		byUsername:       make(map[string]string),
		byEmail:          make(map[string]string),
		maxRefreshTokens: maxRefreshTokens,
	}
}

func (s *Store) Register(ctx context.Context, username, email, password string) (*domain.PublicUser, error) {
	// Hash before taking the lock; bcrypt is CPU-bound.
	digest, err := hash.Password(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[username]; taken {
		return nil, autherror.ErrUserAlreadyExists
	}
	if _, taken := s.byEmail[email]; taken {
		return nil, autherror.ErrUserAlreadyExists
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Role:         authconstant.DefaultUserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.users[user.ID] = user
	s.byUsername[username] = user.ID
	s.byEmail[email] = user.ID
	s.order = append(s.order, user.ID)

	pub := user.Public()

	return &pub, nil
}

// FindByCredential matches usernameOrEmail exactly against either field.
// Returns (nil, nil) when no user matches.
func (s *Store) FindByCredential(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.byUsername[usernameOrEmail]; ok {
		return copyUser(s.users[id]), nil
	}
	if id, ok := s.byEmail[usernameOrEmail]; ok {
		return copyUser(s.users[id]), nil
	}

	return nil, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	return copyUser(user), nil
}

func (s *Store) VerifyPassword(plain, digest string) bool {
	return hash.Verify(plain, digest)
}

func (s *Store) UpdateRole(ctx context.Context, userID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return autherror.ErrUserNotFound
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	return nil
}

// AddRefreshToken appends token to the user's list, evicting the oldest
// entries first when the list is at capacity. No-op if the user is absent.
func (s *Store) AddRefreshToken(ctx context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}

	for len(user.RefreshTokens) >= s.maxRefreshTokens {
		user.RefreshTokens = user.RefreshTokens[1:]
	}
	user.RefreshTokens = append(user.RefreshTokens, token)
	user.UpdatedAt = time.Now()

	return nil
}

// RemoveRefreshToken removes all occurrences of token from the user's list.
// No-op if the user or token is absent.
func (s *Store) RemoveRefreshToken(ctx context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}

	kept := user.RefreshTokens[:0]
	for _, t := range user.RefreshTokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	user.RefreshTokens = kept
	user.UpdatedAt = time.Now()

	return nil
}

func (s *Store) RemoveAllRefreshTokens(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}

	user.RefreshTokens = nil
	user.UpdatedAt = time.Now()

	return nil
}

func (s *Store) HasRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return false, nil
	}

	for _, t := range user.RefreshTokens {
		if t == token {
			return true, nil
		}
	}

	return false, nil
}

func (s *Store) GetRefreshTokens(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}

	tokens := make([]string, len(user.RefreshTokens))
	copy(tokens, user.RefreshTokens)

	return tokens, nil
}

// ListAll returns public projections of every user in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]domain.PublicUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PublicUser, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id].Public())
	}

	return out, nil
}

func (s *Store) RecordLoginAttempt(ctx context.Context, identifier string, success bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.attempts) >= authconstant.MaxLoginAttemptRecords {
		s.attempts = s.attempts[1:]
	}
	s.attempts = append(s.attempts, domain.LoginAttempt{
		Identifier:  identifier,
		AttemptTime: time.Now(),
		Successful:  success,
	})

	return nil
}

// LoginAttempts returns a snapshot of the attempt log, oldest first.
func (s *Store) LoginAttempts() []domain.LoginAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LoginAttempt, len(s.attempts))
	copy(out, s.attempts)

	return out
}

// copyUser returns a detached copy so callers never alias store-owned state.
func copyUser(u *domain.User) *domain.User {
	c := *u
	c.RefreshTokens = make([]string, len(u.RefreshTokens))
	copy(c.RefreshTokens, u.RefreshTokens)

	return &c
}
