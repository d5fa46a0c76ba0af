// Package handler provides HTTP request handlers for the forums API.
//
// This package implements the HTTP endpoints for authentication, profile
// management, and forum content operations.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
	"github.com/mcbarinov/p1--demo-forums--api/internal/core/service"
	"github.com/mcbarinov/p1--demo-forums--api/internal/telemetry/logger"
)

// CookieOptions controls session cookie attributes.
type CookieOptions struct {
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	authSvc  *service.AuthService
	forumSvc *service.ForumService
	logger   logger.Logger
	cookies  CookieOptions
	mux      *http.ServeMux
}

// New creates a new Handler with the given services.
func New(authSvc *service.AuthService, forumSvc *service.ForumService, log logger.Logger, cookies CookieOptions) *Handler {
	h := &Handler{
		authSvc:  authSvc,
		forumSvc: forumSvc,
		logger:   log,
		cookies:  cookies,
		mux:      http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoint (no auth required)
	h.mux.HandleFunc("GET /health", h.handleHealth)

	// Auth endpoints
	h.mux.HandleFunc("POST /auth/login", h.handleLogin)
	h.mux.HandleFunc("POST /auth/logout", h.handleLogout)

	// Profile endpoints
	h.mux.HandleFunc("GET /profile", h.handleProfile)
	h.mux.HandleFunc("POST /profile/change-password", h.handleChangePassword)

	// Forum endpoints
	h.mux.HandleFunc("GET /forums", h.handleListForums)
	h.mux.HandleFunc("POST /forums", h.handleCreateForum)
	h.mux.HandleFunc("GET /forums/{slug}/posts", h.handleListPosts)
	h.mux.HandleFunc("POST /forums/{slug}/posts", h.handleCreatePost)
	h.mux.HandleFunc("GET /forums/{slug}/posts/{number}", h.handleGetPost)
	h.mux.HandleFunc("GET /forums/{slug}/posts/{number}/comments", h.handleListComments)
	h.mux.HandleFunc("POST /forums/{slug}/posts/{number}/comments", h.handleCreateComment)

	// User listing
	h.mux.HandleFunc("GET /users", h.handleListUsers)
}

// writeJSON writes a JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response in the wire format {message, type}.
func (h *Handler) writeError(w http.ResponseWriter, status int, message, errType string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Message: message,
		Type:    errType,
	})
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		message := de.Message
		if de.Details != "" {
			message = de.Details
		}
		h.writeError(w, errorCodeToHTTPStatus(de.Code), message, errorCodeToType(de.Code))
		return
	}

	// Generic internal error
	h.logger.Error("internal error", "error", err)
	h.writeError(w, http.StatusInternalServerError, "internal server error", "internal_error")
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4010"), strings.HasSuffix(code, "-4011"):
		return http.StatusUnauthorized
	// Duplicate slugs surface as a plain bad request, not a conflict.
	case code == "DF-FORUM-4090":
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4000"), strings.HasSuffix(code, "-4001"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "DF-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorCodeToType maps error codes to wire error type strings.
func errorCodeToType(code string) string {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return "not_found"
	case code == "DF-AUTH-4011":
		return "authentication_error"
	case code == "DF-AUTH-4010":
		return "unauthorized"
	case code == "DF-ARG-4001":
		return "validation_error"
	case strings.HasPrefix(code, "DF-SYS-5"):
		return "internal_error"
	default:
		return "bad_request"
	}
}
