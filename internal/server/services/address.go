package services

import (
	"context"
	"database/sql"

	"github.com/burgerlab/backend/internal/server/models"
	"github.com/burgerlab/backend/internal/server/repositories/repomanager"
)

// AddressService manages a user's delivery addresses. Every operation is
// scoped to the owner passed in by the API layer.
type AddressService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewAddressService(db *sql.DB, m repomanager.RepositoryManager) *AddressService {
	return &AddressService{db: db, repos: m}
}

func (s *AddressService) Create(ctx context.Context, userID, street, zipCode, city string) (*models.Address, error) {
	return s.repos.Addresses(s.db).Create(ctx, &models.Address{
		UserID:  userID,
		Street:  street,
		ZipCode: zipCode,
		City:    city,
	})
}

func (s *AddressService) List(ctx context.Context, userID string) ([]*models.Address, error) {
	return s.repos.Addresses(s.db).ListByUser(ctx, userID)
}

// Delete removes the address iff it belongs to userID.
func (s *AddressService) Delete(ctx context.Context, id, userID string) error {
	return s.repos.Addresses(s.db).Delete(ctx, id, userID)
}
