package client

import (
	"context"

	"github.com/gamezone/gamezone/internal/api"
)

// Client is the catalog API as seen by the CLI.
type Client interface {
	Close() error
	// SetToken selects the credential attached to subsequent calls; "" calls anonymously.
	SetToken(token string)

	Register(ctx context.Context, name, email string, password []byte, verified bool) (*api.Author, string, error)
	Authors(ctx context.Context) ([]api.Author, error)
	Author(ctx context.Context, id string) (*api.AuthorResponse, error)

	Games(ctx context.Context) ([]api.Game, error)
	Game(ctx context.Context, id string) (*api.GameResponse, error)
	GamePage(ctx context.Context, pageNo int) ([]api.Game, error)
	GamesByTitle(ctx context.Context, title string) ([]api.Game, error)
	AddGame(ctx context.Context, title string, platforms []string) (*api.Game, error)
	DeleteGame(ctx context.Context, id string) ([]api.Game, error)

	Reviews(ctx context.Context) ([]api.Review, error)
	AddReview(ctx context.Context, gameID string, rating int, content string) (*api.Review, error)
}
