// Package handler provides HTTP request handlers for the forums API.
package handler

import (
	"context"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
)

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "session_id"

type contextKey string

// contextKeyUser is the context key for the authenticated user.
const contextKeyUser contextKey = "user"

// WithUser returns a context carrying the authenticated user.
// The auth middleware calls this after resolving a session.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

// UserFromContext retrieves the authenticated user from context.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(contextKeyUser).(domain.User)
	return user, ok
}
