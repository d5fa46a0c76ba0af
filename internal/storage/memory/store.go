package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
	"github.com/mcbarinov/p1--demo-forums--api/pkg/ident"
)

// Store is the in-memory entity store. All collections are guarded by a
// single RWMutex so every compound mutation (uniqueness check plus append,
// next-number computation plus append) executes as one atomic step relative
// to concurrent requests.
//
// Reads return copies; callers never observe or mutate shared slices.
type Store struct {
	mu sync.RWMutex

	// Users, in insertion order. Index by id and username for lookups.
	users       []*domain.UserWithPassword
	usersByID   map[string]*domain.UserWithPassword
	usersByName map[string]*domain.UserWithPassword

	// Forums, in insertion order. Slug index is case-sensitive.
	forums       []*domain.Forum
	forumsBySlug map[string]*domain.Forum
	forumsByID   map[string]*domain.Forum

	// Posts grouped by forum id, in insertion order.
	postsByForum map[string][]*domain.Post

	// Comments grouped by post id, in insertion order.
	commentsByPost map[string][]*domain.Comment
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		usersByID:      make(map[string]*domain.UserWithPassword),
		usersByName:    make(map[string]*domain.UserWithPassword),
		forumsBySlug:   make(map[string]*domain.Forum),
		forumsByID:     make(map[string]*domain.Forum),
		postsByForum:   make(map[string][]*domain.Post),
		commentsByPost: make(map[string][]*domain.Comment),
	}
}

// ============================================================================
// Users
// ============================================================================

// AddUser registers a user account. Used by the bootstrap fixtures; there is
// no runtime registration endpoint.
func (s *Store) AddUser(_ context.Context, user *domain.UserWithPassword) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *user
	s.users = append(s.users, &clone)
	s.usersByID[clone.ID] = &clone
	s.usersByName[clone.Username] = &clone
}

// Users returns the public projections of all accounts in insertion order.
func (s *Store) Users(_ context.Context) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Public())
	}
	return out
}

// UserByID returns the public projection of the account with the given id.
func (s *Store) UserByID(_ context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u.Public(), nil
}

// VerifyCredentials checks a username/plaintext-password pair and returns the
// matching account's public projection. Unknown username and wrong password
// both yield ErrInvalidCredentials.
func (s *Store) VerifyCredentials(_ context.Context, username, password string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByName[username]
	if !ok || u.Password != password {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return u.Public(), nil
}

// ChangePassword overwrites the stored password after verifying the current
// one. The check-and-write runs under one lock acquisition, so a failed check
// never leaves a partial write.
func (s *Store) ChangePassword(_ context.Context, userID, current, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.Password != current {
		return domain.ErrPasswordMismatch
	}
	u.Password = next
	return nil
}

// ============================================================================
// Forums
// ============================================================================

// Forums returns all forums in insertion order.
func (s *Store) Forums(_ context.Context) []domain.Forum {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Forum, 0, len(s.forums))
	for _, f := range s.forums {
		out = append(out, *f)
	}
	return out
}

// ForumBySlug returns the forum with the given slug (case-sensitive exact
// match).
func (s *Store) ForumBySlug(_ context.Context, slug string) (domain.Forum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.forumsBySlug[slug]
	if !ok {
		return domain.Forum{}, domain.ErrForumNotFound
	}
	return *f, nil
}

// AddForum appends a new forum. The caller assigns the ID. Fails with
// ErrDuplicateSlug when a forum with the same slug already exists; the store
// is left unchanged on failure.
func (s *Store) AddForum(_ context.Context, forum *domain.Forum) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.forumsBySlug[forum.Slug]; exists {
		return domain.ErrDuplicateSlug.WithDetails("slug=" + forum.Slug)
	}

	clone := *forum
	s.forums = append(s.forums, &clone)
	s.forumsBySlug[clone.Slug] = &clone
	s.forumsByID[clone.ID] = &clone
	return nil
}

// ============================================================================
// Posts
// ============================================================================

// PostsByForum returns the forum's posts ordered by CreatedAt descending.
// Ties keep insertion order.
func (s *Store) PostsByForum(_ context.Context, forumID string) []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := s.postsByForum[forumID]
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, *p.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// PostByForumAndNumber returns the post addressed by its per-forum number.
func (s *Store) PostByForumAndNumber(_ context.Context, forumID string, number int) (domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.postsByForum[forumID] {
		if p.Number == number {
			return *p.Clone(), nil
		}
	}
	return domain.Post{}, domain.ErrPostNotFound
}

// NextPostNumber returns 1 + max(existing numbers in the forum), or 1 when
// the forum has no posts yet. Runtime creation goes through CreatePost, which
// recomputes the number under the write lock.
func (s *Store) NextPostNumber(_ context.Context, forumID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextPostNumberLocked(forumID)
}

func (s *Store) nextPostNumberLocked(forumID string) int {
	max := 0
	for _, p := range s.postsByForum[forumID] {
		if p.Number > max {
			max = p.Number
		}
	}
	return max + 1
}

// AppendPost appends a post whose ID and number the caller has already
// assigned. Used by the bootstrap fixtures.
func (s *Store) AppendPost(_ context.Context, post *domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postsByForum[post.ForumID] = append(s.postsByForum[post.ForumID], post.Clone())
}

// CreatePost assigns an ID and the forum's next sequential number and appends
// the post, all under one lock acquisition. Two concurrent creations in the
// same forum therefore never share a number.
func (s *Store) CreatePost(_ context.Context, forumID, title, content string, tags []string, authorID string) domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tags == nil {
		tags = []string{}
	}
	post := &domain.Post{
		ID:        ident.New(),
		ForumID:   forumID,
		Number:    s.nextPostNumberLocked(forumID),
		Title:     title,
		Content:   content,
		Tags:      tags,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	s.postsByForum[forumID] = append(s.postsByForum[forumID], post)
	return *post.Clone()
}

// ============================================================================
// Comments
// ============================================================================

// CommentsByPost returns the post's comments ordered by CreatedAt descending.
func (s *Store) CommentsByPost(_ context.Context, postID string) []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := s.commentsByPost[postID]
	out := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, *c.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AppendComment appends a comment whose ID the caller has already assigned.
// Used by the bootstrap fixtures.
func (s *Store) AppendComment(_ context.Context, comment *domain.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commentsByPost[comment.PostID] = append(s.commentsByPost[comment.PostID], comment.Clone())
}

// CreateComment assigns an ID and appends the comment under one lock
// acquisition.
func (s *Store) CreateComment(_ context.Context, postID, content, authorID string) domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := &domain.Comment{
		ID:        ident.New(),
		PostID:    postID,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	s.commentsByPost[postID] = append(s.commentsByPost[postID], comment)
	return *comment.Clone()
}

// ============================================================================
// Counters (metrics)
// ============================================================================

// Counts returns the current collection sizes.
func (s *Store) Counts() (users, forums, posts, comments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users = len(s.users)
	forums = len(s.forums)
	for _, ps := range s.postsByForum {
		posts += len(ps)
	}
	for _, cs := range s.commentsByPost {
		comments += len(cs)
	}
	return users, forums, posts, comments
}
