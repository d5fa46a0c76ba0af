// Package handler provides HTTP request handlers for the forums API.
package handler

import (
	"net/http"
	"time"

	"github.com/mcbarinov/p1--demo-forums--api/internal/infra/buildinfo"
)

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
