package service

import (
	"context"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
	"github.com/mcbarinov/p1--demo-forums--api/pkg/ident"
	"github.com/mcbarinov/p1--demo-forums--api/pkg/page"
)

// Pagination defaults for post listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ForumRepository defines the storage interface for forum content.
type ForumRepository interface {
	// Forums returns all forums in insertion order.
	Forums(ctx context.Context) []domain.Forum

	// ForumBySlug returns the forum with the slug (case-sensitive).
	ForumBySlug(ctx context.Context, slug string) (domain.Forum, error)

	// AddForum appends a forum; fails with ErrDuplicateSlug on conflict.
	AddForum(ctx context.Context, forum *domain.Forum) error

	// PostsByForum returns the forum's posts, newest first.
	PostsByForum(ctx context.Context, forumID string) []domain.Post

	// PostByForumAndNumber returns the post addressed by per-forum number.
	PostByForumAndNumber(ctx context.Context, forumID string, number int) (domain.Post, error)

	// CreatePost atomically assigns the next number and appends the post.
	CreatePost(ctx context.Context, forumID, title, content string, tags []string, authorID string) domain.Post

	// CommentsByPost returns the post's comments, newest first.
	CommentsByPost(ctx context.Context, postID string) []domain.Comment

	// CreateComment appends a comment to the post.
	CreateComment(ctx context.Context, postID, content, authorID string) domain.Comment
}

// ForumService handles forum, post, and comment operations.
type ForumService struct {
	repo ForumRepository
}

// NewForumService creates a new ForumService.
func NewForumService(repo ForumRepository) *ForumService {
	return &ForumService{repo: repo}
}

// CreateForumRequest contains parameters for forum creation.
type CreateForumRequest struct {
	Title       string
	Slug        string
	Description string
	Category    domain.Category
}

// Validate checks required fields and the category enum.
func (r *CreateForumRequest) Validate() error {
	switch {
	case r.Title == "":
		return domain.ErrValidation.WithDetails("Field 'title' is required")
	case r.Slug == "":
		return domain.ErrValidation.WithDetails("Field 'slug' is required")
	case r.Description == "":
		return domain.ErrValidation.WithDetails("Field 'description' is required")
	case r.Category == "":
		return domain.ErrValidation.WithDetails("Field 'category' is required")
	case !r.Category.Valid():
		return domain.ErrValidation.WithDetails("Field 'category' must be one of: Technology, Science, Art")
	}
	return nil
}

// CreatePostRequest contains parameters for post creation.
type CreatePostRequest struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks required fields. Tags are optional.
func (r *CreatePostRequest) Validate() error {
	switch {
	case r.Title == "":
		return domain.ErrValidation.WithDetails("Field 'title' is required")
	case r.Content == "":
		return domain.ErrValidation.WithDetails("Field 'content' is required")
	}
	return nil
}

// CreateCommentRequest contains parameters for comment creation.
type CreateCommentRequest struct {
	Content string
}

// Validate checks required fields.
func (r *CreateCommentRequest) Validate() error {
	if r.Content == "" {
		return domain.ErrValidation.WithDetails("Field 'content' is required")
	}
	return nil
}

// ListForums returns all forums.
func (s *ForumService) ListForums(ctx context.Context) []domain.Forum {
	return s.repo.Forums(ctx)
}

// CreateForum validates the request and appends a new forum with a fresh
// random identifier. Nothing is written when validation or the slug
// uniqueness check fails.
func (s *ForumService) CreateForum(ctx context.Context, req *CreateForumRequest) (domain.Forum, error) {
	if err := req.Validate(); err != nil {
		return domain.Forum{}, err
	}

	forum := domain.Forum{
		ID:          ident.New(),
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.repo.AddForum(ctx, &forum); err != nil {
		return domain.Forum{}, err
	}
	return forum, nil
}

// ListPosts returns one page of the forum's posts, newest first. Page and
// pageSize fall back to defaults when not positive.
func (s *ForumService) ListPosts(ctx context.Context, slug string, pageNum, pageSize int) (page.Page[domain.Post], error) {
	forum, err := s.repo.ForumBySlug(ctx, slug)
	if err != nil {
		return page.Page[domain.Post]{}, err
	}

	if pageNum < 1 {
		pageNum = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	posts := s.repo.PostsByForum(ctx, forum.ID)
	return page.Paginate(posts, pageNum, pageSize), nil
}

// GetPost returns a single post addressed by forum slug and per-forum number.
func (s *ForumService) GetPost(ctx context.Context, slug string, number int) (domain.Post, error) {
	forum, err := s.repo.ForumBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}
	return s.repo.PostByForumAndNumber(ctx, forum.ID, number)
}

// CreatePost validates the request and appends a new post to the forum,
// letting the store assign the next sequential number atomically.
func (s *ForumService) CreatePost(ctx context.Context, slug string, req *CreatePostRequest, author domain.User) (domain.Post, error) {
	if err := req.Validate(); err != nil {
		return domain.Post{}, err
	}

	forum, err := s.repo.ForumBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}

	return s.repo.CreatePost(ctx, forum.ID, req.Title, req.Content, req.Tags, author.ID), nil
}

// ListComments returns the post's comments, newest first.
func (s *ForumService) ListComments(ctx context.Context, slug string, number int) ([]domain.Comment, error) {
	post, err := s.GetPost(ctx, slug, number)
	if err != nil {
		return nil, err
	}
	return s.repo.CommentsByPost(ctx, post.ID), nil
}

// CreateComment validates the request and appends a comment to the post.
func (s *ForumService) CreateComment(ctx context.Context, slug string, number int, req *CreateCommentRequest, author domain.User) (domain.Comment, error) {
	if err := req.Validate(); err != nil {
		return domain.Comment{}, err
	}

	post, err := s.GetPost(ctx, slug, number)
	if err != nil {
		return domain.Comment{}, err
	}

	return s.repo.CreateComment(ctx, post.ID, req.Content, author.ID), nil
}
