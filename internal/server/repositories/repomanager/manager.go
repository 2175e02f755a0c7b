package repomanager

import (
	"context"
	"database/sql"

	"github.com/burgerlab/backend/internal/dbx"
	"github.com/burgerlab/backend/internal/server/repositories/addresses"
	"github.com/burgerlab/backend/internal/server/repositories/ingredients"
	"github.com/burgerlab/backend/internal/server/repositories/resettokens"
	"github.com/burgerlab/backend/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
	Ingredients(db dbx.DBTX) ingredients.Repository
	Addresses(db dbx.DBTX) addresses.Repository
}
