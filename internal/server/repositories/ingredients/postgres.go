package ingredients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/burgerlab/backend/internal/common"
	"github.com/burgerlab/backend/internal/dbx"
	"github.com/burgerlab/backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ing *models.Ingredient) error {
	query := `
		INSERT INTO ingredients (name, price)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, ing.Name, ing.Price); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	query := `
		SELECT name, price FROM ingredients
		WHERE name = $1
	`
	ing := &models.Ingredient{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&ing.Name, &ing.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ing, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM ingredients WHERE name = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Ingredient, error) {
	query := `
		SELECT name, price FROM ingredients
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Ingredient
	for rows.Next() {
		ing := &models.Ingredient{}
		if err := rows.Scan(&ing.Name, &ing.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, name string, ing *models.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, price = $3
		WHERE name = $1
	`
	res, err := r.db.ExecContext(ctx, query, name, ing.Name, ing.Price)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	query := `
		DELETE FROM ingredients
		WHERE name = $1
	`
	res, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
