package service

import (
	"context"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
	"github.com/mcbarinov/p1--demo-forums--api/pkg/token"
)

// UserRepository defines the storage interface for user account operations.
type UserRepository interface {
	// VerifyCredentials checks a username/password pair and returns the
	// public projection of the matching account.
	VerifyCredentials(ctx context.Context, username, password string) (domain.User, error)

	// UserByID returns the public projection of the account with the id.
	UserByID(ctx context.Context, id string) (domain.User, error)

	// ChangePassword verifies the current password and overwrites it.
	ChangePassword(ctx context.Context, id, current, next string) error

	// Users returns all accounts as public projections.
	Users(ctx context.Context) []domain.User
}

// SessionRepository defines the storage interface for the session table.
type SessionRepository interface {
	// Put stores a token-to-user mapping.
	Put(ctx context.Context, token string, user domain.User)

	// Get resolves a token to its user.
	Get(ctx context.Context, token string) (domain.User, bool)

	// Delete revokes a token. Idempotent.
	Delete(ctx context.Context, token string)

	// RevokeFirstForUser revokes any one token mapped to the user id.
	RevokeFirstForUser(ctx context.Context, userID string) bool

	// Count returns the number of live sessions.
	Count() int
}

// AuthService handles the session lifecycle: login, token resolution,
// logout, and password changes.
type AuthService struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, sessions SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Login verifies the credentials, mints a fresh opaque token, and stores the
// token-to-user mapping. A user may log in any number of times; each login
// yields an independent session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	user, err := s.users.VerifyCredentials(ctx, username, password)
	if err != nil {
		return "", domain.User{}, err
	}

	tok, err := token.New()
	if err != nil {
		return "", domain.User{}, domain.ErrInternalServer.WithCause(err)
	}

	s.sessions.Put(ctx, tok, user)
	return tok, user, nil
}

// Resolve maps a token to its authenticated user. The second return is false
// for unknown or revoked tokens.
func (s *AuthService) Resolve(ctx context.Context, tok string) (domain.User, bool) {
	if tok == "" {
		return domain.User{}, false
	}
	return s.sessions.Get(ctx, tok)
}

// Logout revokes one session held by the user: the table is scanned and the
// first matching token removed. A user logged in on several clients keeps
// the remaining sessions. Logging out with no live session is a no-op.
func (s *AuthService) Logout(ctx context.Context, user domain.User) {
	s.sessions.RevokeFirstForUser(ctx, user.ID)
}

// ChangePassword overwrites the user's stored password after verifying the
// current one. Live sessions are left untouched: a password change does not
// log the user out anywhere.
func (s *AuthService) ChangePassword(ctx context.Context, user domain.User, current, next string) error {
	return s.users.ChangePassword(ctx, user.ID, current, next)
}

// ListUsers returns the public projections of all accounts.
func (s *AuthService) ListUsers(ctx context.Context) []domain.User {
	return s.users.Users(ctx)
}

// SessionCount returns the number of live sessions, for metrics.
func (s *AuthService) SessionCount() int {
	return s.sessions.Count()
}
