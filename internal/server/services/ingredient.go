package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/burgerlab/backend/internal/common"
	"github.com/burgerlab/backend/internal/server/models"
	"github.com/burgerlab/backend/internal/server/repositories/repomanager"
)

// IngredientService exposes the ingredient catalog to the API layer.
type IngredientService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewIngredientService(db *sql.DB, m repomanager.RepositoryManager) *IngredientService {
	return &IngredientService{db: db, repos: m}
}

// Create adds a catalog entry; a taken name yields common.ErrAlreadyExists.
func (s *IngredientService) Create(ctx context.Context, name string, price float64) error {
	repo := s.repos.Ingredients(s.db)

	exists, err := repo.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("error checking ingredient: %w", err)
	}
	if exists {
		return common.ErrAlreadyExists
	}

	return repo.Create(ctx, &models.Ingredient{Name: name, Price: price})
}

// List returns the whole catalog.
func (s *IngredientService) List(ctx context.Context) ([]*models.Ingredient, error) {
	return s.repos.Ingredients(s.db).List(ctx)
}

// GetByName returns one entry, or common.ErrNotFound.
func (s *IngredientService) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	return s.repos.Ingredients(s.db).GetByName(ctx, name)
}

// Update applies the fields of the request that pass the catalog guards:
// renames require more than two non-space characters, prices must exceed
// the 0.2 floor. A rename onto a taken name yields common.ErrAlreadyExists.
func (s *IngredientService) Update(ctx context.Context, name string, newName string, newPrice float64) error {
	repo := s.repos.Ingredients(s.db)

	ing, err := repo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if trimmed := strings.TrimSpace(newName); len(trimmed) > 2 && trimmed != name {
		exists, err := repo.Exists(ctx, trimmed)
		if err != nil {
			return fmt.Errorf("error checking ingredient: %w", err)
		}
		if exists {
			return common.ErrAlreadyExists
		}
		ing.Name = trimmed
	}
	if newPrice > 0.2 {
		ing.Price = newPrice
	}

	return repo.Update(ctx, name, ing)
}

// Delete removes one entry, or returns common.ErrNotFound.
func (s *IngredientService) Delete(ctx context.Context, name string) error {
	return s.repos.Ingredients(s.db).Delete(ctx, name)
}
