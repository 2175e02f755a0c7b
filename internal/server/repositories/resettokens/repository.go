// Package resettokens declares the repository contract for outstanding
// password-reset tokens.
package resettokens

import (
	"context"
	"time"

	"github.com/burgerlab/backend/internal/server/models"
)

// Repository defines operations for issuing and consuming reset tokens.
//
// Replacement of a user's prior token on issue is a service-level concern:
// callers run DeleteAllForUser and Create inside one transaction.
type Repository interface {
	// Create stores a new reset token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Consume atomically removes and returns the token iff it exists and its
	// expiry is after now. A missing or expired token yields
	// common.ErrNotFound; two concurrent calls on the same token cannot both
	// succeed.
	Consume(ctx context.Context, token string, now time.Time) (*models.ResetToken, error)

	// DeleteAllForUser removes every token bound to the user. Deleting when
	// none exist is not an error.
	DeleteAllForUser(ctx context.Context, userID string) error

	// DeleteExpired purges tokens whose expiry is at or before now and
	// reports how many were removed. Purging is maintenance only; Consume
	// rejects expired tokens regardless.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
