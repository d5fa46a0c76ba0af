// Package handler provides HTTP request handlers for the forums API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
	"github.com/mcbarinov/p1--demo-forums--api/internal/core/service"
)

// handleListForums handles GET /forums.
func (h *Handler) handleListForums(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.forumSvc.ListForums(r.Context()))
}

// handleCreateForum handles POST /forums.
func (h *Handler) handleCreateForum(w http.ResponseWriter, r *http.Request) {
	var req CreateForumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}

	forum, err := h.forumSvc.CreateForum(r.Context(), &service.CreateForumRequest{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Category:    domain.Category(req.Category),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, forum)
}

// handleListPosts handles GET /forums/{slug}/posts.
func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	pageNum := queryInt(r, "page", service.DefaultPage)
	pageSize := queryInt(r, "pageSize", service.DefaultPageSize)

	result, err := h.forumSvc.ListPosts(r.Context(), slug, pageNum, pageSize)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// handleGetPost handles GET /forums/{slug}/posts/{number}.
func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	slug, number, err := postPath(r)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	post, err := h.forumSvc.GetPost(r.Context(), slug, number)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, post)
}

// handleCreatePost handles POST /forums/{slug}/posts.
func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.handleServiceError(w, domain.ErrUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}

	post, err := h.forumSvc.CreatePost(r.Context(), r.PathValue("slug"), &service.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}, user)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, post)
}

// handleListComments handles GET /forums/{slug}/posts/{number}/comments.
func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	slug, number, err := postPath(r)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	comments, err := h.forumSvc.ListComments(r.Context(), slug, number)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, comments)
}

// handleCreateComment handles POST /forums/{slug}/posts/{number}/comments.
func (h *Handler) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.handleServiceError(w, domain.ErrUnauthorized)
		return
	}

	slug, number, err := postPath(r)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}

	comment, err := h.forumSvc.CreateComment(r.Context(), slug, number, &service.CreateCommentRequest{
		Content: req.Content,
	}, user)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, comment)
}

// postPath extracts the forum slug and post number from the request path.
func postPath(r *http.Request) (string, int, error) {
	slug := r.PathValue("slug")
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || number < 1 {
		return "", 0, domain.ErrBadRequest.WithDetails("post number must be a positive integer")
	}
	return slug, number, nil
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
