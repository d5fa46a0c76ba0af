// Package handler provides HTTP request handlers for the forums API.
package handler

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// MessageResponse is the standard plain-message success response.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// ChangePasswordRequest is the request body for POST /profile/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateForumRequest is the request body for POST /forums.
type CreateForumRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreatePostRequest is the request body for POST /forums/{slug}/posts.
type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// CreateCommentRequest is the request body for POST /forums/{slug}/posts/{number}/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}
