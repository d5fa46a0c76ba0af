// Package httpserver provides the HTTP server for the forums backend.
//
// This package implements the external API using stdlib net/http:
//
//   - Auth endpoints: /auth/login, /auth/logout
//   - Profile endpoints: /profile, /profile/change-password
//   - Forum endpoints: /forums, /forums/{slug}/posts, ...
//   - User listing: /users
//   - Health and metrics: /health, /metrics
//
// Features:
//
//   - Middleware chain: Recover, CORS, RequestID, RequestLog, Auth
//   - Dual-carrier session auth (bearer header or session cookie)
//   - Prometheus metrics integration
//   - Graceful shutdown with configurable timeout
package httpserver
