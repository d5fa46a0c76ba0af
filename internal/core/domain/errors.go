// Package domain defines the core domain models for the Demo Forums API.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the format DF-<AREA>-<NNNN>, where the last four digits encode
// the HTTP status class the error maps to.
type DomainError struct {
	Code    string // Error code (e.g., "DF-FORUM-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrInvalidCredentials indicates a username/password pair that matches no
	// user. Unknown-username and wrong-password are deliberately
	// indistinguishable to avoid username enumeration.
	ErrInvalidCredentials = NewDomainError("DF-AUTH-4011", "invalid username or password")

	// ErrUnauthorized indicates no resolvable session on a protected route.
	ErrUnauthorized = NewDomainError("DF-AUTH-4010", "not authenticated")

	// ErrPasswordMismatch indicates the supplied current password does not
	// match the stored one during a password change.
	ErrPasswordMismatch = NewDomainError("DF-AUTH-4001", "current password is incorrect")
)

// ============================================================================
// User Errors (USER)
// ============================================================================

var (
	// ErrUserNotFound indicates the user id no longer resolves in the store.
	ErrUserNotFound = NewDomainError("DF-USER-4040", "user not found")
)

// ============================================================================
// Forum Errors (FORUM)
// ============================================================================

var (
	// ErrForumNotFound indicates no forum exists for the requested slug.
	ErrForumNotFound = NewDomainError("DF-FORUM-4040", "forum not found")

	// ErrDuplicateSlug indicates a forum with the requested slug already
	// exists (case-sensitive exact match).
	ErrDuplicateSlug = NewDomainError("DF-FORUM-4090", "a forum with this slug already exists")
)

// ============================================================================
// Post / Comment Errors (POST)
// ============================================================================

var (
	// ErrPostNotFound indicates no post exists for the forum/number pair.
	ErrPostNotFound = NewDomainError("DF-POST-4040", "post not found")
)

// ============================================================================
// Request Errors (ARG)
// ============================================================================

var (
	// ErrValidation indicates a structurally valid request with missing or
	// invalid field values.
	ErrValidation = NewDomainError("DF-ARG-4001", "validation failed")

	// ErrBadRequest indicates a malformed request body.
	ErrBadRequest = NewDomainError("DF-ARG-4000", "bad request")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternalServer indicates an unexpected internal failure.
	ErrInternalServer = NewDomainError("DF-SYS-5000", "internal server error")
)
