package models

import "time"

// ResetToken is a single-use password-reset secret. At most one live token
// exists per user: issuing a new one replaces any earlier token.
type ResetToken struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
