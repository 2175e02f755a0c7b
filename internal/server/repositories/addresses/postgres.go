package addresses

import (
	"context"
	"fmt"

	"github.com/burgerlab/backend/internal/common"
	"github.com/burgerlab/backend/internal/dbx"
	"github.com/burgerlab/backend/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, addr *models.Address) (*models.Address, error) {
	if addr.ID == "" {
		addr.ID = uuid.NewString()
	}

	query := `
		INSERT INTO addresses (id, user_id, street, zip_code, city)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		addr.ID, addr.UserID, addr.Street, addr.ZipCode, addr.City); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return addr, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Address, error) {
	query := `
		SELECT id, user_id, street, zip_code, city FROM addresses
		WHERE user_id = $1
		ORDER BY city, street
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Address
	for rows.Next() {
		addr := &models.Address{}
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.Street, &addr.ZipCode, &addr.City); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `
		DELETE FROM addresses
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
