package fixture

import (
	"context"
	"testing"

	"github.com/mcbarinov/p1--demo-forums--api/internal/storage/memory"
)

func loadedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	if err := Load(context.Background(), store); err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	return store
}

func TestLoad_Counts(t *testing.T) {
	store := loadedStore(t)

	users, forums, posts, _ := store.Counts()
	if users != 4 {
		t.Errorf("expected 4 users, got %d", users)
	}
	if forums != 9 {
		t.Errorf("expected 9 forums, got %d", forums)
	}
	// 120 web-development posts plus 5 in each of the 8 other forums.
	if posts != 160 {
		t.Errorf("expected 160 posts, got %d", posts)
	}
}

func TestLoad_WebDevelopmentForum(t *testing.T) {
	store := loadedStore(t)
	ctx := context.Background()

	forum, err := store.ForumBySlug(ctx, "web-development")
	if err != nil {
		t.Fatalf("web-development forum missing: %v", err)
	}

	posts := store.PostsByForum(ctx, forum.ID)
	if len(posts) != 120 {
		t.Fatalf("expected 120 posts, got %d", len(posts))
	}

	// Listing is newest first; the newest post carries the highest number.
	if posts[0].Number != 120 {
		t.Errorf("expected newest post number 120, got %d", posts[0].Number)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatalf("posts not sorted newest first at index %d", i)
		}
	}

	if n := store.NextPostNumber(ctx, forum.ID); n != 121 {
		t.Errorf("expected next number 121, got %d", n)
	}
}

func TestLoad_OtherForumsNumberFromOne(t *testing.T) {
	store := loadedStore(t)
	ctx := context.Background()

	for _, slug := range []string{"physics", "photography", "digital-art"} {
		forum, err := store.ForumBySlug(ctx, slug)
		if err != nil {
			t.Fatalf("forum %s missing: %v", slug, err)
		}
		posts := store.PostsByForum(ctx, forum.ID)
		if len(posts) != 5 {
			t.Errorf("%s: expected 5 posts, got %d", slug, len(posts))
			continue
		}
		seen := make(map[int]bool)
		for _, p := range posts {
			if p.Number < 1 || p.Number > 5 || seen[p.Number] {
				t.Errorf("%s: bad post number %d", slug, p.Number)
			}
			seen[p.Number] = true
		}
	}
}

func TestLoad_CredentialsWork(t *testing.T) {
	store := loadedStore(t)
	ctx := context.Background()

	for _, username := range []string{"admin", "user1", "alice", "bob"} {
		if _, err := store.VerifyCredentials(ctx, username, username); err != nil {
			t.Errorf("fixture credentials %s/%s rejected: %v", username, username, err)
		}
	}

	admin, err := store.VerifyCredentials(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("expected admin role, got %s", admin.Role)
	}
}

// Two independent loads must produce the same identifiers, so bootstrap data
// is stable across restarts and reimplementations of the fixtures.
func TestLoad_Deterministic(t *testing.T) {
	ctx := context.Background()
	first := loadedStore(t)
	second := loadedStore(t)

	fa, _ := first.ForumBySlug(ctx, "web-development")
	fb, _ := second.ForumBySlug(ctx, "web-development")
	if fa.ID != fb.ID {
		t.Errorf("forum IDs differ across loads: %s vs %s", fa.ID, fb.ID)
	}

	pa, err := first.PostByForumAndNumber(ctx, fa.ID, 1)
	if err != nil {
		t.Fatalf("post 1 missing: %v", err)
	}
	pb, _ := second.PostByForumAndNumber(ctx, fb.ID, 1)
	if pa.ID != pb.ID {
		t.Errorf("post IDs differ across loads: %s vs %s", pa.ID, pb.ID)
	}
	if pa.Title != pb.Title {
		t.Errorf("post titles differ across loads: %q vs %q", pa.Title, pb.Title)
	}

	ua, _ := first.UserByID(ctx, pa.AuthorID)
	ub, _ := second.UserByID(ctx, pb.AuthorID)
	if ua.Username != ub.Username {
		t.Errorf("authors differ across loads: %s vs %s", ua.Username, ub.Username)
	}
}
