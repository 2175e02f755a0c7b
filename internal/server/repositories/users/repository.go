// Package users declares the repository contract for account storage.
package users

import (
	"context"

	"github.com/burgerlab/backend/internal/server/models"
)

// Repository defines durable lookup and mutation of user accounts.
type Repository interface {
	// Create stores a new user and returns it with its generated id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by email, case-insensitively.
	// Returns common.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks a user up by id. Returns common.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePassword overwrites the stored password hash in a single write.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
