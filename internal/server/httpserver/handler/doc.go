// Package handler provides HTTP request handlers for the forums API.
//
// This package contains handlers for all HTTP endpoints:
//
//   - auth.go: Login, logout, profile, password change, user listing
//   - forum.go: Forum, post, and comment operations
//   - health.go: Liveness check
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Format and return response
//   - Handle errors with appropriate HTTP status codes
package handler
