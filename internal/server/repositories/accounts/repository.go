// Package accounts declares the account repository contract. Besides
// plain storage it is the account directory the authorization gate
// resolves identities against.
package accounts

import (
	"context"

	"github.com/gamezone/gamezone/internal/server/models"
)

type Repository interface {
	// Create inserts the account and fills in its generated ID and CreatedAt.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// FindByID returns common.ErrorNotFound when no account has the id.
	FindByID(ctx context.Context, id string) (*models.Account, error)

	// List returns every account, oldest first.
	List(ctx context.Context) ([]*models.Account, error)
}
