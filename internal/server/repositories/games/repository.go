// Package games declares the game repository contract.
package games

import (
	"context"

	"github.com/gamezone/gamezone/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	FindByID(ctx context.Context, id string) (*models.Game, error)
	List(ctx context.Context) ([]*models.Game, error)

	// Page returns at most limit games after skipping offset, in list order.
	Page(ctx context.Context, limit, offset int) ([]*models.Game, error)
	Count(ctx context.Context) (int, error)

	// SearchTitle matches titles against a case-insensitive POSIX regular expression.
	SearchTitle(ctx context.Context, pattern string) ([]*models.Game, error)

	// Update applies the non-nil fields of upd and returns the stored game.
	Update(ctx context.Context, id string, upd models.GameUpdate) (*models.Game, error)

	// Delete returns common.ErrorNotFound when no game has the id.
	Delete(ctx context.Context, id string) error
}
