// Package ingredients declares the repository contract for the ingredient
// catalog.
package ingredients

import (
	"context"

	"github.com/burgerlab/backend/internal/server/models"
)

// Repository defines name-keyed catalog storage.
type Repository interface {
	// Create stores a new ingredient. Duplicate names are a db-level error.
	Create(ctx context.Context, ing *models.Ingredient) error

	// GetByName returns the ingredient, or common.ErrNotFound.
	GetByName(ctx context.Context, name string) (*models.Ingredient, error)

	// Exists reports whether an ingredient with the name is present.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns the full catalog ordered by name.
	List(ctx context.Context) ([]*models.Ingredient, error)

	// Update rewrites the entry currently stored under name, possibly
	// renaming it. Returns common.ErrNotFound when absent.
	Update(ctx context.Context, name string, ing *models.Ingredient) error

	// Delete removes the ingredient. Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, name string) error
}
