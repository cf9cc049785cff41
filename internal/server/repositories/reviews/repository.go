// Package reviews declares the review repository contract.
package reviews

import (
	"context"

	"github.com/gamezone/gamezone/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context) ([]*models.Review, error)
	ListByGame(ctx context.Context, gameID string) ([]*models.Review, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Review, error)
}
