// Package handler provides HTTP request handlers for the forums API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
)

// sessionCookieMaxAge is the session cookie lifetime (7 days).
const sessionCookieMaxAge = 7 * 24 * 60 * 60

// handleLogin handles POST /auth/login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}

	if req.Username == "" {
		h.writeError(w, http.StatusBadRequest, "Field 'username' is required", "validation_error")
		return
	}
	if req.Password == "" {
		h.writeError(w, http.StatusBadRequest, "Field 'password' is required", "validation_error")
		return
	}

	tok, user, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.setSessionCookie(w, tok)
	h.logger.Info("user logged in", "username", user.Username)

	h.writeJSON(w, http.StatusOK, LoginResponse{AuthToken: tok})
}

// handleLogout handles POST /auth/logout.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.handleServiceError(w, domain.ErrUnauthorized)
		return
	}

	h.authSvc.Logout(r.Context(), user)
	h.clearSessionCookie(w)

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// handleProfile handles GET /profile.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.handleServiceError(w, domain.ErrUnauthorized)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// handleChangePassword handles POST /profile/change-password.
func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.handleServiceError(w, domain.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}

	if req.CurrentPassword == "" {
		h.writeError(w, http.StatusBadRequest, "Field 'currentPassword' is required", "validation_error")
		return
	}
	if req.NewPassword == "" {
		h.writeError(w, http.StatusBadRequest, "Field 'newPassword' is required", "validation_error")
		return
	}

	if err := h.authSvc.ChangePassword(r.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}

// handleListUsers handles GET /users.
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.authSvc.ListUsers(r.Context()))
}

// setSessionCookie attaches the session cookie to the response.
func (h *Handler) setSessionCookie(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookies.Secure,
	})
}

// clearSessionCookie expires the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookies.Secure,
	})
}
