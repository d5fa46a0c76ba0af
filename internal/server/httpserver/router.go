// Package httpserver provides the HTTP server for the forums backend.
package httpserver

import (
	"net/http"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/service"
	"github.com/mcbarinov/p1--demo-forums--api/internal/server/httpserver/handler"
	"github.com/mcbarinov/p1--demo-forums--api/internal/telemetry/logger"
	"github.com/mcbarinov/p1--demo-forums--api/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// AuthService handles login, logout, and session resolution.
	AuthService *service.AuthService

	// ForumService handles forum, post, and comment operations.
	ForumService *service.ForumService

	// Logger for request logging.
	Logger logger.Logger

	// Metrics records request metrics and serves /metrics. Optional.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins.
	CORSAllowedOrigins []string

	// SecureCookies marks session cookies as Secure.
	SecureCookies bool
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.AuthService, cfg.ForumService, cfg.Logger, handler.CookieOptions{
		Secure: cfg.SecureCookies,
	})

	// Shared middleware, outermost first.
	base := []Middleware{
		Recover(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}
	if cfg.Metrics != nil {
		base = append(base, Metrics(cfg.Metrics))
	}

	public := append(append([]Middleware{}, base...), RequestLog(cfg.Logger))
	// Auth runs before RequestLog so the username is in context when logged;
	// rejected requests are logged by Auth itself.
	protected := append(append([]Middleware{}, base...), Auth(cfg.AuthService, cfg.Logger), RequestLog(cfg.Logger))

	publicHandler := Chain(h, public...)
	protectedHandler := Chain(h, protected...)

	mux := http.NewServeMux()

	// Unauthenticated endpoints
	mux.Handle("POST /auth/login", publicHandler)
	mux.Handle("GET /health", publicHandler)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), base...))
	}

	// CORS preflight for any path
	mux.Handle("OPTIONS /", Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), CORS(cfg.CORSAllowedOrigins)))

	// Session-protected endpoints
	mux.Handle("POST /auth/logout", protectedHandler)
	mux.Handle("GET /profile", protectedHandler)
	mux.Handle("POST /profile/change-password", protectedHandler)
	mux.Handle("GET /forums", protectedHandler)
	mux.Handle("POST /forums", protectedHandler)
	mux.Handle("GET /forums/{slug}/posts", protectedHandler)
	mux.Handle("POST /forums/{slug}/posts", protectedHandler)
	mux.Handle("GET /forums/{slug}/posts/{number}", protectedHandler)
	mux.Handle("GET /forums/{slug}/posts/{number}/comments", protectedHandler)
	mux.Handle("POST /forums/{slug}/posts/{number}/comments", protectedHandler)
	mux.Handle("GET /users", protectedHandler)

	return mux
}
