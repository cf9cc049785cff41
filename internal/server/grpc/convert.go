package grpc

import (
	"github.com/gamezone/gamezone/internal/api"
	"github.com/gamezone/gamezone/internal/server/models"
)

func toGame(g *models.Game) api.Game {
	platforms := g.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	return api.Game{ID: g.ID, Title: g.Title, Platforms: platforms, CreatedAt: g.CreatedAt}
}

func toGames(in []*models.Game) []api.Game {
	out := make([]api.Game, 0, len(in))
	for _, g := range in {
		out = append(out, toGame(g))
	}
	return out
}

func toReview(r *models.Review) api.Review {
	return api.Review{
		ID:        r.ID,
		Rating:    r.Rating,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		GameID:    r.GameID,
		CreatedAt: r.CreatedAt,
	}
}

func toReviews(in []*models.Review) []api.Review {
	out := make([]api.Review, 0, len(in))
	for _, r := range in {
		out = append(out, toReview(r))
	}
	return out
}

// toAuthor drops the password hash.
func toAuthor(a *models.Account) api.Author {
	return api.Author{ID: a.ID, Name: a.Name, Email: a.Email, Verified: a.Verified, CreatedAt: a.CreatedAt}
}
