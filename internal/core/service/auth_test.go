package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
)

// mockUserRepo implements UserRepository for testing.
type mockUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.UserWithPassword // by id
}

func newMockUserRepo(users ...*domain.UserWithPassword) *mockUserRepo {
	r := &mockUserRepo{users: make(map[string]*domain.UserWithPassword)}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *mockUserRepo) VerifyCredentials(_ context.Context, username, password string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return u.Public(), nil
		}
	}
	return domain.User{}, domain.ErrInvalidCredentials
}

func (r *mockUserRepo) UserByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return u.Public(), nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *mockUserRepo) ChangePassword(_ context.Context, id, current, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.Password != current {
		return domain.ErrPasswordMismatch
	}
	u.Password = next
	return nil
}

func (r *mockUserRepo) Users(_ context.Context) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Public())
	}
	return out
}

// mockSessionRepo implements SessionRepository for testing.
type mockSessionRepo struct {
	mu      sync.RWMutex
	byToken map[string]domain.User
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{byToken: make(map[string]domain.User)}
}

func (r *mockSessionRepo) Put(_ context.Context, token string, user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[token] = user
}

func (r *mockSessionRepo) Get(_ context.Context, token string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byToken[token]
	return u, ok
}

func (r *mockSessionRepo) Delete(_ context.Context, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byToken, token)
}

func (r *mockSessionRepo) RevokeFirstForUser(_ context.Context, userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, u := range r.byToken {
		if u.ID == userID {
			delete(r.byToken, token)
			return true
		}
	}
	return false
}

func (r *mockSessionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

func adminAccount() *domain.UserWithPassword {
	return &domain.UserWithPassword{
		User:     domain.User{ID: "id-admin", Username: "admin", Role: domain.RoleAdmin},
		Password: "admin",
	}
}

func testAuthService() (*AuthService, *mockUserRepo, *mockSessionRepo) {
	users := newMockUserRepo(adminAccount())
	sessions := newMockSessionRepo()
	return NewAuthService(users, sessions), users, sessions
}

func TestAuthService_Login(t *testing.T) {
	svc, _, sessions := testAuthService()
	ctx := context.Background()

	t.Run("valid credentials mint a resolvable token", func(t *testing.T) {
		tok, user, err := svc.Login(ctx, "admin", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok == "" {
			t.Fatal("expected non-empty token")
		}
		if user.Username != "admin" {
			t.Errorf("expected admin, got %s", user.Username)
		}

		resolved, ok := svc.Resolve(ctx, tok)
		if !ok || resolved.ID != user.ID {
			t.Error("token does not resolve to the logged-in user")
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "admin", "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("each login is an independent session", func(t *testing.T) {
		before := sessions.Count()
		if _, _, err := svc.Login(ctx, "admin", "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessions.Count() != before+1 {
			t.Error("expected a new session entry")
		}
	})
}

func TestAuthService_Resolve(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	if _, ok := svc.Resolve(ctx, ""); ok {
		t.Error("empty token must not resolve")
	}
	if _, ok := svc.Resolve(ctx, "unknown"); ok {
		t.Error("unknown token must not resolve")
	}
}

// Logout removes one session for the user, not all of them. This mirrors the
// original backend's scan-and-remove-first behavior; multi-device users stay
// logged in elsewhere.
func TestAuthService_Logout_RevokesSingleSession(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	tok1, user, err := svc.Login(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok2, _, err := svc.Login(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.Logout(ctx, user)

	_, ok1 := svc.Resolve(ctx, tok1)
	_, ok2 := svc.Resolve(ctx, tok2)
	if ok1 && ok2 {
		t.Fatal("logout revoked nothing")
	}
	if !ok1 && !ok2 {
		t.Fatal("logout revoked every session; exactly one must survive")
	}

	// Logging out with no remaining session is a no-op.
	svc.Logout(ctx, user)
	svc.Logout(ctx, user)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	tok, user, err := svc.Login(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user, "nope", "next")
		if !errors.Is(err, domain.ErrPasswordMismatch) {
			t.Fatalf("expected ErrPasswordMismatch, got %v", err)
		}
		// No mutation: the old password still logs in.
		if _, _, err := svc.Login(ctx, "admin", "admin"); err != nil {
			t.Error("old password rejected after failed change")
		}
	})

	t.Run("unknown user id", func(t *testing.T) {
		ghost := domain.User{ID: "gone", Username: "ghost"}
		err := svc.ChangePassword(ctx, ghost, "x", "y")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success keeps existing sessions alive", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, user, "admin", "rotated"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Deliberate behavior, not a bug: password changes do not invalidate
		// live sessions.
		if _, ok := svc.Resolve(ctx, tok); !ok {
			t.Error("session was invalidated by a password change")
		}
		if _, _, err := svc.Login(ctx, "admin", "rotated"); err != nil {
			t.Error("new password rejected")
		}
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	svc, _, _ := testAuthService()

	users := svc.ListUsers(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Username != "admin" {
		t.Errorf("expected admin, got %s", users[0].Username)
	}
}
