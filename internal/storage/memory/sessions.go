package memory

import (
	"context"
	"sync"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
)

// SessionTable maps opaque tokens to authenticated users. It exclusively
// owns the token-to-user mapping; sessions live until revoked or until the
// process restarts. A user may hold any number of concurrent sessions.
type SessionTable struct {
	mu      sync.RWMutex
	byToken map[string]domain.User
}

// NewSessionTable creates an empty session table.
func NewSessionTable() *SessionTable {
	return &SessionTable{
		byToken: make(map[string]domain.User),
	}
}

// Put stores a token-to-user mapping. The user must be the password-stripped
// public projection.
func (t *SessionTable) Put(_ context.Context, token string, user domain.User) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byToken[token] = user
}

// Get resolves a token to its user. The second return is false for unknown
// or revoked tokens.
func (t *SessionTable) Get(_ context.Context, token string) (domain.User, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	user, ok := t.byToken[token]
	return user, ok
}

// Delete revokes a token. Revoking an unknown token is a no-op, so the
// operation is idempotent.
func (t *SessionTable) Delete(_ context.Context, token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.byToken, token)
}

// RevokeFirstForUser scans for any one token mapped to the user id and
// revokes only that token. Other sessions the user holds stay valid.
// Reports whether a session was found and removed.
func (t *SessionTable) RevokeFirstForUser(_ context.Context, userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for token, user := range t.byToken {
		if user.ID == userID {
			delete(t.byToken, token)
			return true
		}
	}
	return false
}

// Count returns the number of live sessions.
func (t *SessionTable) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byToken)
}
