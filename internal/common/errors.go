// Package common defines shared constants and sentinel errors used across
// the backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal      = errors.New("internal error")
	ErrEmailExists   = errors.New("email already registered")
	ErrAlreadyExists = errors.New("already exists")

	// Credential errors. Unknown email and wrong password both map to
	// ErrInvalidCredentials so responses cannot be used for enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongOldPassword   = errors.New("old password is not correct")
	ErrSamePassword       = errors.New("new password matches the old one")
	ErrPasswordTooShort   = errors.New("password too short")

	// Password-reset lifecycle errors.
	ErrInvalidOrExpiredToken = errors.New("reset token is invalid or expired")
	ErrDeliveryFailure       = errors.New("reset mail delivery failed")

	// Session-token validation errors (distinguished for observability,
	// collapsed to a single unauthenticated outcome at the HTTP boundary).
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
)
