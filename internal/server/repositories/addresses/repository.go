// Package addresses declares the repository contract for per-user delivery
// addresses.
package addresses

import (
	"context"

	"github.com/burgerlab/backend/internal/server/models"
)

// Repository defines address-book storage, always scoped to an owner.
type Repository interface {
	// Create stores a new address for its UserID and returns it with its
	// generated id.
	Create(ctx context.Context, addr *models.Address) (*models.Address, error)

	// ListByUser returns the user's addresses.
	ListByUser(ctx context.Context, userID string) ([]*models.Address, error)

	// Delete removes the address iff it belongs to userID.
	// Returns common.ErrNotFound otherwise.
	Delete(ctx context.Context, id string, userID string) error
}
